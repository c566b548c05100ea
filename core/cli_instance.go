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
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

// RunCLIInstance executes op until it returns or the process
// is interrupted. On interrupt the context passed to op is
// cancelled and op is awaited so that in-flight work can
// finish.
func RunCLIInstance(config *Config, op func(context.Context) error) error {
	if config.EnableVerboseLog {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	chanSignal := make(chan os.Signal, 1)
	signal.Notify(chanSignal, os.Interrupt)
	defer signal.Stop(chanSignal)

	awaiter := Go(func() error {
		return op(ctx)
	})

	select {
	case <-awaiter.Done():
	case <-chanSignal:
		// A second interrupt terminates the process.
		signal.Stop(chanSignal)
		log.WithFields(log.Fields{"module": "cli_instance"}).Info("interrupted. waiting for in-flight operations, interrupt again to exit")
		cancelFunc()
	}

	return awaiter.Err()
}
