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
	"strings"

	"github.com/google/uuid"
)

// NewEntries mints n entries from the template.
// Ids are generated here so that they are not known
// until the batch is about to be sent.
func NewEntries(template string, n int) []*Entry {
	entries := make([]*Entry, n)
	for i := range entries {
		id := uuid.New().String()
		entries[i] = &Entry{
			ID:   id,
			Body: strings.ReplaceAll(template, UniqueToken, id),
		}
	}
	return entries
}
