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

import "fmt"

// PlanBatches partitions total into an ordered list of batch sizes.
// All batches are full except the last one which carries the
// remainder (if any).
func PlanBatches(total int, maxBatchSize int) []int {
	if total < 0 {
		panic(fmt.Sprintf("Unexpected input: negative total %d", total))
	}
	if maxBatchSize <= 0 {
		panic(fmt.Sprintf("Unexpected input: non-positive batch size %d", maxBatchSize))
	}

	fullBatches := total / maxBatchSize
	remainder := total % maxBatchSize

	numberOfBatches := fullBatches
	if remainder > 0 {
		numberOfBatches++
	}

	plan := make([]int, 0, numberOfBatches)
	for i := 0; i < fullBatches; i++ {
		plan = append(plan, maxBatchSize)
	}
	if remainder > 0 {
		plan = append(plan, remainder)
	}
	return plan
}
