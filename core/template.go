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
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadTemplate reads the message template from source and
// returns its compact JSON representation.
// Relative paths are resolved against workDir, or the current
// working directory when workDir is empty.
// YAML documents (.yaml, .yml) are converted to JSON. Everything
// else is expected to be JSON.
func LoadTemplate(source string, workDir string) (string, error) {
	if source == "" {
		return "", errors.New("message source is not specified")
	}

	path, err := resolvePath(source, workDir)
	if err != nil {
		return "", err
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlToJSON(content, path)
	default:
		buf := &bytes.Buffer{}
		if err := json.Compact(buf, content); err != nil {
			return "", errors.Wrapf(err, "invalid json in message source %s", path)
		}
		return buf.String(), nil
	}
}

func resolvePath(source string, workDir string) (string, error) {
	if filepath.IsAbs(source) {
		return source, nil
	}
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.WithStack(err)
		}
		workDir = wd
	}
	return filepath.Join(workDir, source), nil
}

func yamlToJSON(content []byte, path string) (string, error) {
	var doc interface{}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return "", errors.Wrapf(err, "invalid yaml in message source %s", path)
	}
	if doc == nil {
		return "", errors.Errorf("empty message source %s", path)
	}

	output, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrapf(err, "unable to convert message source %s to json", path)
	}
	return string(output), nil
}
