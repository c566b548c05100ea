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
	"encoding/json"
	"fmt"
	"io"
	"postman/core"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// GetConfig builds the core configuration from flags,
// environment and the config file.
func GetConfig(retryable func(error) bool) *core.Config {
	return &core.Config{
		ConcurrentProducers: viper.GetInt("concurrent-producers"),
		CallTimeout:         viper.GetDuration("call-timeout"),
		RetryPolicy:         core.NewRetryPolicy(viper.GetInt("retry-count"), viper.GetDuration("retry-delay"), retryable),
		EnableVerboseLog:    viper.GetBool("verbose"),
	}
}

func validateConfig(config *core.Config) error {
	if config.ConcurrentProducers <= 0 {
		return errors.Errorf("concurrent-producers must be a positive integer, got %d", config.ConcurrentProducers)
	}
	if config.RetryPolicy.Count < 0 {
		return errors.Errorf("retry-count must not be negative, got %d", config.RetryPolicy.Count)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
