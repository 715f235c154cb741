/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"fmt"

	logging "github.com/op/go-logging"
)

// PrefixLogger tags every record of a module logger with a fixed prefix,
// e.g. the problem being solved.
type PrefixLogger struct {
	prefix string
	log    *logging.Logger
}

func NewPrefixLogger(module, prefix string) *PrefixLogger {
	log := logging.MustGetLogger(module)
	// report the caller of PrefixLogger, not logf
	log.ExtraCalldepth += 2
	return &PrefixLogger{prefix: prefix, log: log}
}

func (l *PrefixLogger) logf(level logging.Level, format string, args ...interface{}) {
	if !l.log.IsEnabledFor(level) {
		return
	}
	message := l.prefix + " " + fmt.Sprintf(format, args...)
	switch level {
	case logging.ERROR:
		l.log.Error(message)
	case logging.WARNING:
		l.log.Warning(message)
	case logging.INFO:
		l.log.Info(message)
	default:
		l.log.Debug(message)
	}
}

func (l *PrefixLogger) Errorf(format string, args ...interface{}) {
	l.logf(logging.ERROR, format, args...)
}

func (l *PrefixLogger) Warningf(format string, args ...interface{}) {
	l.logf(logging.WARNING, format, args...)
}

func (l *PrefixLogger) Infof(format string, args ...interface{}) {
	l.logf(logging.INFO, format, args...)
}

func (l *PrefixLogger) Debugf(format string, args ...interface{}) {
	l.logf(logging.DEBUG, format, args...)
}
