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

package cmd

import (
	"context"
	"postman/core"
	"postman/kafka"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var topic string
var brokerAddresses []string

// kafkaCmd represents the kafka command
var kafkaCmd = &cobra.Command{
	Use:   "kafka",
	Short: "Publish to a kafka topic",
	Long:  ``,
}

var kafkaSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the message template to the topic",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKafka(func(ctx context.Context, postman *core.Postman) error {
			return postman.SendMessage(ctx, core.SendOptions{
				QueueName:     topic,
				MessageSource: messageSource,
				Total:         total,
			})
		})
	},
}

var kafkaStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the approximate number of messages retained in the topic",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKafka(func(ctx context.Context, postman *core.Postman) error {
			handle, err := postman.GetQueueURL(ctx, topic)
			if err != nil {
				return err
			}
			stats, err := postman.GetStats(ctx, handle)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

func runKafka(op func(context.Context, *core.Postman) error) error {
	config := GetConfig(kafka.IsRetryable)
	if err := validateConfig(config); err != nil {
		return err
	}

	client, err := kafka.NewClient(&kafka.Config{BrokerAddresses: brokerAddresses})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.WithFields(log.Fields{"module": "kafka_cmd", "err": err}).Info("error closing kafka client")
		}
	}()

	postman := core.NewPostman(client, config)
	return core.RunCLIInstance(config, func(ctx context.Context) error {
		return op(ctx, postman)
	})
}

func init() {
	rootCmd.AddCommand(kafkaCmd)
	kafkaCmd.AddCommand(kafkaSendCmd, kafkaStatsCmd)

	kafkaCmd.PersistentFlags().StringVar(&topic, "topic", "", "topic name")
	kafkaCmd.PersistentFlags().StringArrayVar(&brokerAddresses, "brokers", []string{}, "broker addresses")
	kafkaCmd.MarkPersistentFlagRequired("topic")
	kafkaCmd.MarkPersistentFlagRequired("brokers")

	kafkaSendCmd.Flags().StringVarP(&messageSource, "message-source", "m", "", "path to the message template (json or yaml)")
	kafkaSendCmd.Flags().IntVarP(&total, "total", "n", 1, "number of messages to send")
	kafkaSendCmd.MarkFlagRequired("message-source")
}
