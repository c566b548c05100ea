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

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MetadataReader is the subset of sarama.Client used to
// resolve topics and read their offsets.
type MetadataReader interface {
	Topics() ([]string, error)
	Partitions(topic string) ([]int32, error)
	GetOffset(topic string, partitionID int32, time int64) (int64, error)
}

type Config struct {
	BrokerAddresses []string
}

// Client implements core.QueueClient for a Kafka topic.
// Queue handles are topic names.
//
// Sarama calls are not context aware, so the context is only
// checked before each call.
type Client struct {
	KafkaConfig *Config
	Metadata    MetadataReader
	Producer    sarama.SyncProducer
	closer      func() error
	logFields   log.Fields
}

func (c *Client) Resolve(ctx context.Context, topic string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	topics, err := c.Metadata.Topics()
	if err != nil {
		return "", errors.WithStack(err)
	}
	for _, t := range topics {
		if t == topic {
			return topic, nil
		}
	}
	return "", errors.Errorf("topic %s not found", topic)
}

// Stats approximates the number of messages retained in the
// topic as the sum of newest - oldest offsets of every partition.
func (c *Client) Stats(ctx context.Context, topic string) (*core.Stats, error) {
	partitions, err := c.Metadata.Partitions(topic)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	total := int64(0)
	for _, p := range partitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		newest, err := c.Metadata.GetOffset(topic, p, sarama.OffsetNewest)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read newest offset of partition %d", p)
		}
		oldest, err := c.Metadata.GetOffset(topic, p, sarama.OffsetOldest)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read oldest offset of partition %d", p)
		}
		total += newest - oldest
	}

	log.WithFields(c.logFields).WithFields(log.Fields{"topic": topic, "partitions": len(partitions)}).Debug("read topic offsets")
	return &core.Stats{Messages: int(total)}, nil
}

func (c *Client) SendBatch(ctx context.Context, topic string, entries []*core.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msgs := make([]*sarama.ProducerMessage, len(entries))
	for i, e := range entries {
		msgs[i] = &sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(e.ID),
			Value: sarama.StringEncoder(e.Body),
		}
	}

	if err := c.Producer.SendMessages(msgs); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// IsRetryable reports whether err is a transient producer
// failure. A batch error is retryable only when every message in
// the batch failed with a retryable error.
func IsRetryable(err error) bool {
	switch e := errors.Cause(err).(type) {
	case sarama.ProducerErrors:
		if len(e) == 0 {
			return false
		}
		for _, pe := range e {
			if !IsRetryable(pe.Err) {
				return false
			}
		}
		return true
	case *sarama.ProducerError:
		return IsRetryable(e.Err)
	case sarama.KError:
		switch e {
		case sarama.ErrNotLeaderForPartition, sarama.ErrLeaderNotAvailable, sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas, sarama.ErrNotEnoughReplicasAfterAppend, sarama.ErrNetworkException:
			return true
		}
		return false
	}
	return errors.Cause(err) == sarama.ErrOutOfBrokers
}

// Close releases the producer and the underlaying sarama client.
func (c *Client) Close() error {
	if err := c.Producer.Close(); err != nil {
		return errors.WithStack(err)
	}
	if c.closer != nil {
		return errors.WithStack(c.closer())
	}
	return nil
}

func NewClient(kafkaConfig *Config) (*Client, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_4_0_0 // specify appropriate version
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 0

	client, err := sarama.NewClient(kafkaConfig.BrokerAddresses, config)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		client.Close()
		return nil, errors.WithStack(err)
	}

	c := NewClientWithProducer(kafkaConfig, client, producer)
	c.closer = client.Close
	return c, nil
}

func NewClientWithProducer(kafkaConfig *Config, metadata MetadataReader, producer sarama.SyncProducer) *Client {
	return &Client{
		KafkaConfig: kafkaConfig,
		Metadata:    metadata,
		Producer:    producer,
		logFields:   log.Fields{"module": "kafka_client"},
	}
}
