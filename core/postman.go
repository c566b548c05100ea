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
	"sync/atomic"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Postman publishes a message template to a queue
// as many times as requested.
type Postman struct {
	Client    QueueClient
	Config    *Config
	logFields log.Fields
}

// GetQueueURL resolves a queue name to the handle understood
// by the queue client.
func (p *Postman) GetQueueURL(ctx context.Context, queueName string) (string, error) {
	log.WithFields(p.logFields).Debugf("getting queue url for queue with name %s", queueName)

	ctx, cancelFunc := context.WithTimeout(ctx, p.Config.CallTimeout)
	defer cancelFunc()

	handle, err := p.Client.Resolve(ctx, queueName)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve queue %s", queueName)
	}
	return handle, nil
}

// GetStats reads the approximate depth of the queue.
func (p *Postman) GetStats(ctx context.Context, queueHandle string) (*Stats, error) {
	log.WithFields(p.logFields).Debugf("getting stats for queue %s", queueHandle)

	ctx, cancelFunc := context.WithTimeout(ctx, p.Config.CallTimeout)
	defer cancelFunc()

	stats, err := p.Client.Stats(ctx, queueHandle)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read stats of queue %s", queueHandle)
	}
	return stats, nil
}

// SendMessage publishes the message template in options.MessageSource
// options.Total times. It returns the first error encountered, in which case
// some of the batches may have been delivered already.
func (p *Postman) SendMessage(ctx context.Context, options SendOptions) error {
	log.WithFields(p.logFields).WithField("options", options).Debug("sending message")

	total := options.Total
	if total < 0 {
		return errors.Errorf("invalid number of messages %d", total)
	}
	if total == 0 {
		total = 1
	}

	queueHandle, err := p.GetQueueURL(ctx, options.QueueName)
	if err != nil {
		return err
	}

	log.WithFields(p.logFields).Debugf("loading message body from %s", options.MessageSource)
	template, err := LoadTemplate(options.MessageSource, options.WorkDir)
	if err != nil {
		return err
	}

	plan := PlanBatches(total, MaxBatchSize)
	log.WithFields(p.logFields).WithField("batches", plan).Debug("about to send batches")

	sw := NewStopwatch()
	var processedBatches int32
	pump := NewBatchPump(p.Config.ConcurrentProducers, func(ctx context.Context, batchNo int, size int) error {
		if err := p.sendBatch(ctx, queueHandle, template, batchNo, size); err != nil {
			return err
		}
		n := atomic.AddInt32(&processedBatches, 1)
		log.WithFields(p.logFields).Debugf("successfully processed batch %d of %d", n, len(plan))
		return nil
	})

	err = pump.Run(ctx, plan)
	sw.Lap("sent")

	fields := log.Fields{
		"queue":            queueHandle,
		"messages":         total,
		"batches":          len(plan),
		"processedBatches": atomic.LoadInt32(&processedBatches),
	}
	if err != nil {
		log.WithFields(p.logFields).WithFields(fields).WithFields(sw.Fields()).WithField("err", err).Info("send failed")
		return err
	}
	log.WithFields(p.logFields).WithFields(fields).WithFields(sw.Fields()).Info("done")
	return nil
}

func (p *Postman) sendBatch(ctx context.Context, queueHandle string, template string, batchNo int, size int) error {
	sw := NewStopwatch()
	entries := NewEntries(template, size)
	sw.Lap("entries-created")

	err := p.Config.RetryPolicy.Execute(ctx, func() error {
		callCtx, cancelFunc := context.WithTimeout(ctx, p.Config.CallTimeout)
		defer cancelFunc()
		return p.Client.SendBatch(callCtx, queueHandle, entries)
	}, "send batch %d", batchNo)
	sw.Lap("sent")

	log.WithFields(p.logFields).WithFields(sw.Fields()).WithFields(log.Fields{"batch": batchNo, "size": size}).Debug("batch processed")
	if err != nil {
		return errors.Wrapf(err, "unable to send batch %d", batchNo)
	}
	return nil
}

func NewPostman(client QueueClient, config *Config) *Postman {
	c := *config
	if c.ConcurrentProducers <= 0 {
		c.ConcurrentProducers = DefaultConcurrentProducers
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	logFields := log.Fields{"module": "postman"}
	log.WithFields(logFields).WithField("config", c).Debug("starting postman")
	return &Postman{
		Client:    client,
		Config:    &c,
		logFields: logFields,
	}
}
