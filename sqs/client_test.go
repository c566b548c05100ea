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

package sqs_test

import (
	"context"
	"postman/core"
	"postman/mocks"
	"postman/sqs"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awssqs "github.com/aws/aws-sdk-go/service/sqs"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const queueName string = "my-test-queue"
const queueURL string = "http://aws/my-test-queue"

func newClient(ctrl *gomock.Controller) (*sqs.Client, *mocks.MockSQSAPI) {
	api := mocks.NewMockSQSAPI(ctrl)
	return sqs.NewClientWithAPI(&sqs.Configuration{}, api), api
}

func TestResolveUsesQueueName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, api := newClient(ctrl)
	api.EXPECT().
		GetQueueUrlWithContext(gomock.Any(), &awssqs.GetQueueUrlInput{QueueName: aws.String(queueName)}).
		Return(&awssqs.GetQueueUrlOutput{QueueUrl: aws.String(queueURL)}, nil)

	url, err := client.Resolve(context.Background(), queueName)

	assert.NoError(t, err)
	assert.Equal(t, queueURL, url)
}

func TestResolveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedError := awserr.New(awssqs.ErrCodeQueueDoesNotExist, "queue does not exist", nil)
	client, api := newClient(ctrl)
	api.EXPECT().GetQueueUrlWithContext(gomock.Any(), gomock.Any()).Return(nil, expectedError)

	_, err := client.Resolve(context.Background(), queueName)

	assert.Equal(t, expectedError, errors.Cause(err))
}

func TestResolveWithoutURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, api := newClient(ctrl)
	api.EXPECT().GetQueueUrlWithContext(gomock.Any(), gomock.Any()).Return(&awssqs.GetQueueUrlOutput{}, nil)

	_, err := client.Resolve(context.Background(), queueName)

	assert.EqualError(t, err, "queue my-test-queue not found")
}

func TestStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, api := newClient(ctrl)
	api.EXPECT().
		GetQueueAttributesWithContext(gomock.Any(), &awssqs.GetQueueAttributesInput{
			QueueUrl:       aws.String(queueURL),
			AttributeNames: aws.StringSlice([]string{"All"}),
		}).
		Return(&awssqs.GetQueueAttributesOutput{
			Attributes: aws.StringMap(map[string]string{
				"ApproximateNumberOfMessages":           "5",
				"ApproximateNumberOfMessagesNotVisible": "2",
				"VisibilityTimeout":                     "30",
			}),
		}, nil)

	stats, err := client.Stats(context.Background(), queueURL)

	assert.NoError(t, err)
	assert.Equal(t, &core.Stats{Messages: 5, MessagesNotVisible: 2}, stats)
}

func TestStatsWithInvalidCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, api := newClient(ctrl)
	api.EXPECT().GetQueueAttributesWithContext(gomock.Any(), gomock.Any()).Return(&awssqs.GetQueueAttributesOutput{
		Attributes: aws.StringMap(map[string]string{"ApproximateNumberOfMessages": "many"}),
	}, nil)

	_, err := client.Stats(context.Background(), queueURL)

	assert.Error(t, err)
}

func TestStatsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedError := errors.New("getQueueAttributes failed!")
	client, api := newClient(ctrl)
	api.EXPECT().GetQueueAttributesWithContext(gomock.Any(), gomock.Any()).Return(nil, expectedError)

	_, err := client.Stats(context.Background(), queueURL)

	assert.Equal(t, expectedError, errors.Cause(err))
}

func TestSendBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, api := newClient(ctrl)
	api.EXPECT().
		SendMessageBatchWithContext(gomock.Any(), &awssqs.SendMessageBatchInput{
			QueueUrl: aws.String(queueURL),
			Entries: []*awssqs.SendMessageBatchRequestEntry{
				{Id: aws.String("a"), MessageBody: aws.String(`{"id":"a"}`)},
				{Id: aws.String("b"), MessageBody: aws.String(`{"id":"b"}`)},
			},
		}).
		Return(&awssqs.SendMessageBatchOutput{}, nil)

	err := client.SendBatch(context.Background(), queueURL, []*core.Entry{
		{ID: "a", Body: `{"id":"a"}`},
		{ID: "b", Body: `{"id":"b"}`},
	})

	assert.NoError(t, err)
}

func TestSendBatchWithRejectedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, api := newClient(ctrl)
	api.EXPECT().SendMessageBatchWithContext(gomock.Any(), gomock.Any()).Return(&awssqs.SendMessageBatchOutput{
		Failed: []*awssqs.BatchResultErrorEntry{
			{Id: aws.String("b"), Code: aws.String("InternalError"), SenderFault: aws.Bool(false)},
		},
	}, nil)

	err := client.SendBatch(context.Background(), queueURL, []*core.Entry{{ID: "a"}, {ID: "b"}})

	assert.EqualError(t, err, "1 of 2 entries rejected (b: InternalError)")
}

func TestSendBatchTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _ := newClient(ctrl)
	err := client.SendBatch(context.Background(), queueURL, core.NewEntries("x", core.MaxBatchSize+1))

	assert.EqualError(t, err, "batch size cannot exceed 10 entries, got 11")
}

func TestSendBatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedError := awserr.New("RequestThrottled", "slow down", nil)
	client, api := newClient(ctrl)
	api.EXPECT().SendMessageBatchWithContext(gomock.Any(), gomock.Any()).Return(nil, expectedError)

	err := client.SendBatch(context.Background(), queueURL, []*core.Entry{{ID: "a"}})

	assert.Equal(t, expectedError, errors.Cause(err))
	assert.True(t, sqs.IsThrottle(err))
}

func TestIsThrottle(t *testing.T) {
	assert.True(t, sqs.IsThrottle(errors.Wrap(awserr.New("Throttling", "", nil), "send")))
	assert.False(t, sqs.IsThrottle(awserr.New(awssqs.ErrCodeQueueDoesNotExist, "", nil)))
	assert.False(t, sqs.IsThrottle(errors.New("doh")))
}
