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

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SendFunc sends a single batch of the given size.
// batchNo is the position of the batch in the plan.
type SendFunc func(ctx context.Context, batchNo int, size int) error

// BatchPump runs a batch plan with a bounded number of
// concurrent sends.
type BatchPump struct {
	Limit     int
	Send      SendFunc
	logFields log.Fields
}

// Run dispatches every batch in the plan.
// This process consists of following steps:
// - Submit batches in plan order, blocking while Limit sends are in flight
// - Stop submitting once a send fails or ctx is cancelled
// - Wait for the sends already in flight to return
// - Return the first error, or nil if every batch was sent
//
// Sends receive a context detached from ctx cancellation, so
// batches in flight complete when a sibling fails or ctx is
// cancelled. ctx only controls whether new batches are submitted.
func (p *BatchPump) Run(ctx context.Context, plan []int) error {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultConcurrentProducers
	}

	sendCtx := context.WithoutCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	submitted := 0
	for i, size := range plan {
		if gctx.Err() != nil {
			log.WithFields(p.logFields).Debugf("stop submitting batches at %d of %d", i, len(plan))
			break
		}
		submitted++

		batchNo, batchSize := i, size
		g.Go(func() error {
			// We may have been blocked in Go until a slot was
			// released by a failing sibling.
			if err := ctx.Err(); err != nil {
				return err
			}
			if gctx.Err() != nil {
				return nil
			}
			return p.Send(sendCtx, batchNo, batchSize)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if submitted < len(plan) {
		return ctx.Err()
	}
	return nil
}

func NewBatchPump(limit int, send SendFunc) *BatchPump {
	if limit <= 0 {
		limit = DefaultConcurrentProducers
	}
	return &BatchPump{
		Limit:     limit,
		Send:      send,
		logFields: log.Fields{"module": "batch_pump"},
	}
}
