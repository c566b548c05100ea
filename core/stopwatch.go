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
	"time"

	log "github.com/sirupsen/logrus"
)

type Lap struct {
	Name     string
	Duration time.Duration
}

type Stopwatch struct {
	Laps      []Lap
	StartTime time.Time
	LapStart  time.Time
}

func (s *Stopwatch) Lap(name string) {
	s.Laps = append(s.Laps, Lap{name, time.Since(s.LapStart)})
	s.LapStart = time.Now()
}

func (s *Stopwatch) Total() time.Duration {
	return time.Since(s.StartTime)
}

// Fields renders the laps recorded so far for structured logging.
func (s *Stopwatch) Fields() log.Fields {
	parts := make(map[string]string, len(s.Laps))
	for _, l := range s.Laps {
		parts[l.Name] = l.Duration.String()
	}
	return log.Fields{"duration": s.Total(), "duration_parts": parts}
}

func NewStopwatch() *Stopwatch {
	n := time.Now()
	return &Stopwatch{
		StartTime: n,
		LapStart:  n,
	}
}
