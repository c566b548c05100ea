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

package sqs

import (
	"fmt"
	"postman/core"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=../mocks/mock_sqs_api.go -package=mocks postman/sqs SQSAPI

const DefaultRegion string = "eu-west-1"
const DefaultProfile string = "default"

// SQSAPI is the subset of the sqs client used by Client.
type SQSAPI interface {
	GetQueueUrlWithContext(aws.Context, *sqs.GetQueueUrlInput, ...request.Option) (*sqs.GetQueueUrlOutput, error)
	GetQueueAttributesWithContext(aws.Context, *sqs.GetQueueAttributesInput, ...request.Option) (*sqs.GetQueueAttributesOutput, error)
	SendMessageBatchWithContext(aws.Context, *sqs.SendMessageBatchInput, ...request.Option) (*sqs.SendMessageBatchOutput, error)
}

type Configuration struct {
	Region   string
	Profile  string
	Endpoint string
}

// Client implements core.QueueClient for AWS SQS.
// Queue handles are queue urls.
type Client struct {
	Configuration *Configuration
	API           SQSAPI
	logFields     log.Fields
}

func (c *Client) Resolve(ctx aws.Context, queueName string) (string, error) {
	result, err := c.API.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	if result.QueueUrl == nil {
		return "", errors.Errorf("queue %s not found", queueName)
	}

	log.WithFields(c.logFields).WithFields(log.Fields{"queueName": queueName, "queueUrl": *result.QueueUrl}).Debug("resolved queue")
	return *result.QueueUrl, nil
}

func (c *Client) Stats(ctx aws.Context, queueURL string) (*core.Stats, error) {
	result, err := c.API.GetQueueAttributesWithContext(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: aws.StringSlice([]string{sqs.QueueAttributeNameAll}),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	messages, err := intAttribute(result.Attributes, sqs.QueueAttributeNameApproximateNumberOfMessages)
	if err != nil {
		return nil, err
	}
	notVisible, err := intAttribute(result.Attributes, sqs.QueueAttributeNameApproximateNumberOfMessagesNotVisible)
	if err != nil {
		return nil, err
	}
	delayed, err := intAttribute(result.Attributes, sqs.QueueAttributeNameApproximateNumberOfMessagesDelayed)
	if err != nil {
		return nil, err
	}

	return &core.Stats{
		Messages:           messages,
		MessagesNotVisible: notVisible,
		MessagesDelayed:    delayed,
	}, nil
}

func (c *Client) SendBatch(ctx aws.Context, queueURL string, entries []*core.Entry) error {
	if len(entries) > core.MaxBatchSize {
		return errors.Errorf("batch size cannot exceed %d entries, got %d", core.MaxBatchSize, len(entries))
	}

	batch := &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries:  make([]*sqs.SendMessageBatchRequestEntry, len(entries)),
	}
	for i, e := range entries {
		batch.Entries[i] = &sqs.SendMessageBatchRequestEntry{
			Id:          aws.String(e.ID),
			MessageBody: aws.String(e.Body),
		}
	}

	result, err := c.API.SendMessageBatchWithContext(ctx, batch)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(result.Failed) > 0 {
		failures := make([]string, len(result.Failed))
		for i, f := range result.Failed {
			failures[i] = fmt.Sprintf("%s: %s", aws.StringValue(f.Id), aws.StringValue(f.Code))
		}
		return errors.Errorf("%d of %d entries rejected (%s)", len(result.Failed), len(entries), strings.Join(failures, ", "))
	}
	return nil
}

// IsThrottle reports whether err was caused by the service
// throttling requests.
func IsThrottle(err error) bool {
	return request.IsErrorThrottle(errors.Cause(err))
}

func intAttribute(attributes map[string]*string, name string) (int, error) {
	v, ok := attributes[name]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for attribute %s", name)
	}
	return n, nil
}

// NewClient creates a client with its own session. Region and
// credentials profile come from the configuration only.
// SDK level retries are disabled, see core.RetryPolicy.
func NewClient(configuration *Configuration) (*Client, error) {
	c := *configuration
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Profile == "" {
		c.Profile = DefaultProfile
	}

	awsConfig := aws.Config{
		Region:     aws.String(c.Region),
		MaxRetries: aws.Int(0),
	}
	if c.Endpoint != "" {
		awsConfig.Endpoint = aws.String(c.Endpoint)
	}

	s, err := session.NewSessionWithOptions(session.Options{
		Config:            awsConfig,
		Profile:           c.Profile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewClientWithAPI(&c, sqs.New(s)), nil
}

func NewClientWithAPI(configuration *Configuration, api SQSAPI) *Client {
	return &Client{
		Configuration: configuration,
		API:           api,
		logFields:     log.Fields{"module": "sqs_client"},
	}
}
