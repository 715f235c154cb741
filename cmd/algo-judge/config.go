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

package main

import (
	"os"

	units "github.com/docker/go-units"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	DEFAULT_LOG_LEVEL     = "info"
	DEFAULT_BUFFER_SIZE   = "128KiB"
	MIN_BUFFER_SIZE_BYTES = 64
)

type IOConfig struct {
	ReadBuffer  string `yaml:"read-buffer"`
	WriteBuffer string `yaml:"write-buffer"`

	readBufferBytes  int
	writeBufferBytes int
}

type Config struct {
	LogFile  string   `default:"" yaml:"log-file"`
	LogLevel string   `default:"info" yaml:"log-level"`
	IO       IOConfig `yaml:"io"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel: DEFAULT_LOG_LEVEL,
		IO: IOConfig{
			ReadBuffer:  DEFAULT_BUFFER_SIZE,
			WriteBuffer: DEFAULT_BUFFER_SIZE,
		},
	}
}

func parseBufferSize(name, size string) (int, error) {
	bytes, err := units.RAMInBytes(size)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", name)
	}
	if bytes < MIN_BUFFER_SIZE_BYTES {
		return 0, errors.Errorf("%s %s is smaller than %d bytes", name, size, MIN_BUFFER_SIZE_BYTES)
	}
	return int(bytes), nil
}

func (c *Config) validate() error {
	var err error
	if c.IO.readBufferBytes, err = parseBufferSize("io.read-buffer", c.IO.ReadBuffer); err != nil {
		return err
	}
	if c.IO.writeBufferBytes, err = parseBufferSize("io.write-buffer", c.IO.WriteBuffer); err != nil {
		return err
	}
	return nil
}

// loadConfig reads path over the defaults. An empty path or a missing file
// yields the defaults.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path != "" {
		configBytes, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.Warningf("config file %s not found, using defaults", path)
		case err != nil:
			return nil, errors.Wrapf(err, "read config file %s", path)
		default:
			if err = yaml.Unmarshal(configBytes, config); err != nil {
				return nil, errors.Wrapf(err, "unmarshal yaml(%s)", path)
			}
		}
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}
