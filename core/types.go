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
	"time"
)

// MaxBatchSize is the maximum number of entries the queue
// service accepts in a single batch send.
const MaxBatchSize int = 10

// DefaultConcurrentProducers is the number of batch sends
// allowed in flight when no limit is configured.
const DefaultConcurrentProducers int = 10

// DefaultCallTimeout bounds every individual call made to the
// queue service.
const DefaultCallTimeout time.Duration = 30 * time.Second

// UniqueToken is the placeholder replaced by the entry id in
// every message body.
const UniqueToken string = "%unique%"

// Entry is a single message instance sent as part of a batch.
type Entry struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// Stats is a point in time snapshot of a queue's depth.
// All counts are approximate.
type Stats struct {
	Messages           int `json:"messages"`
	MessagesNotVisible int `json:"messagesNotVisible"`
	MessagesDelayed    int `json:"messagesDelayed"`
}

//go:generate mockgen -destination=../mocks/mock_queue_client.go -package=mocks postman/core QueueClient

// QueueClient is the common interface used to interact with
// an underlaying queue service. Queue handles returned by Resolve
// are opaque to the rest of the system and must be passed back
// verbatim to Stats and SendBatch.
type QueueClient interface {
	Resolve(ctx context.Context, queueName string) (string, error)
	Stats(ctx context.Context, queueHandle string) (*Stats, error)
	SendBatch(ctx context.Context, queueHandle string, entries []*Entry) error
}

// SendOptions describes a single publish run.
type SendOptions struct {
	QueueName     string
	MessageSource string
	WorkDir       string
	Total         int
}

// Config of common knobs.
type Config struct {
	ConcurrentProducers int
	CallTimeout         time.Duration
	RetryPolicy         *RetryPolicy
	EnableVerboseLog    bool
}
