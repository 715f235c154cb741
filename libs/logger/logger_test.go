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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	logging "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConsoleLog(t *testing.T) {
	buffer := &bytes.Buffer{}
	consoleWriter = buffer
	defer func() { consoleWriter = os.Stderr }()

	require.NoError(t, InitConsoleLog("warning"))
	log := logging.MustGetLogger("logger_test")
	log.Info("hidden")
	log.Warning("shown")
	assert.NotContains(t, buffer.String(), "hidden")
	assert.Contains(t, buffer.String(), "shown")
	assert.Equal(t, "WARNING", GetLogLevel())

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, "DEBUG", GetLogLevel())
	assert.Error(t, SetLogLevel("loud"))
	assert.Error(t, InitConsoleLog("loud"))
}

func TestInitLog(t *testing.T) {
	consoleWriter = &bytes.Buffer{}
	defer func() { consoleWriter = os.Stderr }()

	filePath := filepath.Join(t.TempDir(), "nested", "algo.log")
	require.NoError(t, InitLog(filePath, "info"))
	logging.MustGetLogger("logger_test").Info("to file")

	_, err := os.Stat(filepath.Dir(filePath))
	assert.NoError(t, err)
	assert.Error(t, InitLog(filePath, "loud"))
}

func TestPrefixLogger(t *testing.T) {
	buffer := &bytes.Buffer{}
	consoleWriter = buffer
	defer func() { consoleWriter = os.Stderr }()

	require.NoError(t, InitConsoleLog("info"))
	l := NewPrefixLogger("logger_test", "[segtree]")
	l.Infof("read %d values", 5)
	l.Debugf("hidden")
	assert.Contains(t, buffer.String(), "[segtree] read 5 values")
	assert.Contains(t, buffer.String(), "logger_test.go")
	assert.NotContains(t, buffer.String(), "hidden")
}
