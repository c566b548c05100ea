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
	"fmt"
	"postman/core"
	"postman/sqs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var queueName, messageSource string
var total int

// sqsCmd represents the sqs command
var sqsCmd = &cobra.Command{
	Use:   "sqs",
	Short: "Publish to an AWS sqs queue",
	Long:  ``,
}

var sqsSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the message template to the queue",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSQS(func(ctx context.Context, postman *core.Postman) error {
			return postman.SendMessage(ctx, core.SendOptions{
				QueueName:     queueName,
				MessageSource: messageSource,
				Total:         total,
			})
		})
	},
}

var sqsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the approximate number of messages in the queue",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSQS(func(ctx context.Context, postman *core.Postman) error {
			url, err := postman.GetQueueURL(ctx, queueName)
			if err != nil {
				return err
			}
			stats, err := postman.GetStats(ctx, url)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

var sqsURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the url of the queue",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSQS(func(ctx context.Context, postman *core.Postman) error {
			url, err := postman.GetQueueURL(ctx, queueName)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		})
	},
}

func runSQS(op func(context.Context, *core.Postman) error) error {
	config := GetConfig(sqs.IsThrottle)
	if err := validateConfig(config); err != nil {
		return err
	}

	client, err := sqs.NewClient(&sqs.Configuration{
		Region:   viper.GetString("aws-region"),
		Profile:  viper.GetString("aws-profile"),
		Endpoint: viper.GetString("aws-endpoint"),
	})
	if err != nil {
		return err
	}

	postman := core.NewPostman(client, config)
	return core.RunCLIInstance(config, func(ctx context.Context) error {
		return op(ctx, postman)
	})
}

func init() {
	rootCmd.AddCommand(sqsCmd)
	sqsCmd.AddCommand(sqsSendCmd, sqsStatsCmd, sqsURLCmd)

	sqsCmd.PersistentFlags().StringVarP(&queueName, "queue-name", "q", "", "queue name")
	sqsCmd.MarkPersistentFlagRequired("queue-name")

	sqsSendCmd.Flags().StringVarP(&messageSource, "message-source", "m", "", "path to the message template (json or yaml)")
	sqsSendCmd.Flags().IntVarP(&total, "total", "n", 1, "number of messages to send")
	sqsSendCmd.MarkFlagRequired("message-source")
}
