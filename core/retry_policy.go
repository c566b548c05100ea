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
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// RetryPolicy retries failed operations. The zero value
// (and a nil policy) never retries.
// When Retryable is set, only the errors it accepts are retried.
type RetryPolicy struct {
	Count     int
	Delay     time.Duration
	Retryable func(error) bool
}

func (p *RetryPolicy) Execute(ctx context.Context, op func() error, idFormat string, args ...interface{}) error {
	if p == nil {
		return op()
	}

	err := op()
	if err == nil || p.Count == 0 || !p.retryable(err) {
		return err
	}

	id := fmt.Sprintf(idFormat, args...)

	log.WithFields(log.Fields{"module": "retry_policy", "operationId": id, "error": err}).Infof("retry_policy: operation %s failed. begin retrying", id)

	for i := 0; i < p.Count; i++ {
		select {
		case <-ctx.Done():
			return err
		case <-time.After(p.backoff()):
		}

		err = op()
		if err == nil {
			return nil
		}
		log.WithFields(log.Fields{"module": "retry_policy", "operationId": id, "error": err, "retryAttempt": i + 1}).Infof("retry_policy: operation %s failed.", id)
		if !p.retryable(err) {
			return err
		}
	}
	return err
}

func (p *RetryPolicy) retryable(err error) bool {
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

// backoff is Delay plus up to 50% jitter.
func (p *RetryPolicy) backoff() time.Duration {
	if p.Delay <= 0 {
		return 0
	}
	return p.Delay + time.Duration(rand.Int63n(int64(p.Delay/2)+1))
}

func NewRetryPolicy(count int, delay time.Duration, retryable func(error) bool) *RetryPolicy {
	return &RetryPolicy{count, delay, retryable}
}
