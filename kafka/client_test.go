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

package kafka

import (
	"context"
	"postman/core"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testMetadata struct {
	topics  []string
	offsets map[int32][2]int64
	err     error
}

func (m *testMetadata) Topics() ([]string, error) {
	return m.topics, m.err
}

func (m *testMetadata) Partitions(topic string) ([]int32, error) {
	partitions := []int32{}
	for p := range m.offsets {
		partitions = append(partitions, p)
	}
	return partitions, m.err
}

func (m *testMetadata) GetOffset(topic string, partitionID int32, time int64) (int64, error) {
	if time == sarama.OffsetOldest {
		return m.offsets[partitionID][0], nil
	}
	return m.offsets[partitionID][1], nil
}

func TestResolve(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	client := NewClientWithProducer(&Config{}, &testMetadata{topics: []string{"a", "load"}}, producer)
	defer client.Close()

	handle, err := client.Resolve(context.Background(), "load")
	assert.NoError(t, err)
	assert.Equal(t, "load", handle)

	_, err = client.Resolve(context.Background(), "missing")
	assert.EqualError(t, err, "topic missing not found")
}

func TestResolveFailure(t *testing.T) {
	expectedError := errors.New("no brokers")
	producer := mocks.NewSyncProducer(t, nil)
	client := NewClientWithProducer(&Config{}, &testMetadata{err: expectedError}, producer)
	defer client.Close()

	_, err := client.Resolve(context.Background(), "load")
	assert.Equal(t, expectedError, errors.Cause(err))
}

func TestStats(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	metadata := &testMetadata{offsets: map[int32][2]int64{
		0: {0, 5},
		1: {10, 12},
		2: {3, 3},
	}}
	client := NewClientWithProducer(&Config{}, metadata, producer)
	defer client.Close()

	stats, err := client.Stats(context.Background(), "load")
	assert.NoError(t, err)
	assert.Equal(t, &core.Stats{Messages: 7}, stats)
}

func TestSendBatch(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()
	producer.ExpectSendMessageAndSucceed()
	client := NewClientWithProducer(&Config{}, &testMetadata{}, producer)

	err := client.SendBatch(context.Background(), "load", core.NewEntries(`{"id":"%unique%"}`, 2))

	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestSendBatchFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)
	client := NewClientWithProducer(&Config{}, &testMetadata{}, producer)
	defer client.Close()

	err := client.SendBatch(context.Background(), "load", core.NewEntries("x", 1))

	assert.Equal(t, sarama.ErrNotLeaderForPartition, errors.Cause(err))
}

func TestSendBatchCancelled(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	client := NewClientWithProducer(&Config{}, &testMetadata{}, producer)
	defer client.Close()

	ctx, cancelFunc := context.WithCancel(context.Background())
	cancelFunc()

	err := client.SendBatch(ctx, "load", core.NewEntries("x", 1))
	assert.Equal(t, context.Canceled, err)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(sarama.ErrNotLeaderForPartition))
	assert.True(t, IsRetryable(errors.WithStack(sarama.ErrRequestTimedOut)))
	assert.True(t, IsRetryable(sarama.ErrOutOfBrokers))
	assert.True(t, IsRetryable(sarama.ProducerErrors{
		{Err: sarama.ErrLeaderNotAvailable},
		{Err: sarama.ErrNotEnoughReplicas},
	}))

	assert.False(t, IsRetryable(sarama.ErrMessageSizeTooLarge))
	assert.False(t, IsRetryable(sarama.ProducerErrors{
		{Err: sarama.ErrLeaderNotAvailable},
		{Err: sarama.ErrInvalidMessage},
	}))
	assert.False(t, IsRetryable(errors.New("doh")))
}
