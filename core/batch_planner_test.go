/*
Copyright © 2020 Postman Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanBatchesExamples(t *testing.T) {
	assert.Equal(t, []int{10, 5}, PlanBatches(15, 10))
	assert.Equal(t, []int{10}, PlanBatches(10, 10))
	assert.Equal(t, []int{}, PlanBatches(0, 10))
	assert.Equal(t, []int{7}, PlanBatches(7, 10))
	assert.Equal(t, []int{10, 10, 10, 1}, PlanBatches(31, 10))
	assert.Equal(t, []int{1, 1, 1}, PlanBatches(3, 1))
}

func TestPlanBatchesInvariants(t *testing.T) {
	for max := 1; max <= 12; max++ {
		for total := 0; total <= 250; total++ {
			plan := PlanBatches(total, max)

			sum := 0
			for i, size := range plan {
				sum += size
				assert.True(t, size > 0 && size <= max, "total=%d max=%d size=%d", total, max, size)
				if i != len(plan)-1 {
					assert.Equal(t, max, size, "only the last batch can be partial")
				}
			}
			assert.Equal(t, total, sum)
			assert.Equal(t, (total+max-1)/max, len(plan))
		}
	}
}

func TestPlanBatchesInvalidInput(t *testing.T) {
	assert.Panics(t, func() { PlanBatches(-1, 10) })
	assert.Panics(t, func() { PlanBatches(10, 0) })
}
