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
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"postman/core"
	"postman/sqs"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "postman",
	Short: "Publish a message template to a queue as many times as you like",
	Long: `postman loads a message template and sends it to a queue the requested
number of times. Every occurrence of %unique% in the template is replaced
with an id unique to each message.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.postman.yaml)")
	rootCmd.PersistentFlags().Int("concurrent-producers", core.DefaultConcurrentProducers, "maximum number of batches sent concurrently")
	rootCmd.PersistentFlags().String("aws-region", sqs.DefaultRegion, "aws region")
	rootCmd.PersistentFlags().String("aws-profile", sqs.DefaultProfile, "aws shared credentials profile")
	rootCmd.PersistentFlags().String("aws-endpoint", "", "custom sqs endpoint (e.g. localstack)")
	rootCmd.PersistentFlags().Duration("call-timeout", core.DefaultCallTimeout, "deadline of each call made to the queue service")
	rootCmd.PersistentFlags().Int("retry-count", 0, "number of retry attempts for throttled or transiently failing batches")
	rootCmd.PersistentFlags().Duration("retry-delay", time.Second, "delay between retry attempts")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".postman")
	}

	viper.SetEnvPrefix("postman")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
