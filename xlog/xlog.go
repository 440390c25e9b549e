/*
 * Copyright (c) 2020. Temple3x (temple3x@gmail.com)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package xlog provides logger features.
//
// All log entries are encoded in JSON,
// and time format is ISO8601 ("2006-01-02T15:04:05.000Z0700")
package xlog

import (
	"github.com/docker/go-units"
	"go.uber.org/zap"

	"github.com/zaibyte/kupyna/config"
	"github.com/zaibyte/kupyna/config/settings"
)

// TimeFormat is used for parsing log entry's time field.
const (
	ISO8601TimeFormat = "2006-01-02T15:04:05.000Z0700"
)

// RunIDFieldName is the key of run ID in log entries.
const RunIDFieldName = "run_id"

// Config is the log configs of a kupyna tool.
type Config struct {
	ErrorLogOutput string `toml:"error_log_output"`
	ErrorLogLevel  string `toml:"error_log_level"`
	// SumLogOutput is the output of sum logger,
	// no sum log if it's empty.
	SumLogOutput string `toml:"sum_log_output"`
}

// MakeLogger inits global error logger and returns loggers for a kupyna tool.
// sl is nil if there is no SumLogOutput.
func (c *Config) MakeLogger(runID string) (el *ErrorLogger, sl *SumLogger, err error) {

	config.Adjust(&c.ErrorLogOutput, settings.DefaultLogOutput)
	config.Adjust(&c.ErrorLogLevel, settings.DefaultLogLevel)

	el, err = NewErrorLogger(c.ErrorLogOutput, c.ErrorLogLevel)
	if err != nil {
		return
	}

	InitGlobalLogger(el, runID)

	if c.SumLogOutput == "" {
		return
	}
	sl, err = NewSumLogger(c.SumLogOutput)
	if err != nil {
		_ = el.Close()
		return
	}
	return
}

// RunID constructs a field with the run ID key and value.
func RunID(runID string) zap.Field {
	return zap.String(RunIDFieldName, runID)
}

// Size constructs a field with bytes in human readable form.
func Size(key string, n int64) zap.Field {
	return zap.String(key, units.BytesSize(float64(n)))
}
