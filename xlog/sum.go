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

package xlog

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// SumLogger is used for recording every code or MAC made by kupyna tools,
// one entry for each input.
type SumLogger struct {
	fl *FreeLogger
}

// NewSumLogger creates a SumLogger.
func NewSumLogger(outputPath string) (logger *SumLogger, err error) {
	fl, err := NewFreeLogger(outputPath)
	if err != nil {
		return
	}
	return &SumLogger{fl}, nil
}

// SumLogFmt: sum logger output format.
//
// |      name     |  type  |             detail              |		e.g		              |
// |---------------|--------|---------------------------------|------------------------------|
// | name          | string | file name, "-" is stdin         | a.txt                        |
// | op            | string | "hash" or "mac"                 | hash                         |
// | bits          | int    | code length in bits             | 256                          |
// | bytes         | int64  | input length                    | 1024                         |
// | took          | float64| see ps 1                        | 1.00                         |
// | code          | string | hex code or MAC                 | 08f4ee6f...                  |
// | time          | string | log entry written time(ISO8601) | 2020-06-26T01:09:22.852+0800 |
// | run_id        | string |                                 | 0242ac110002d204...          |
//
// ps:
// 1. took
// Time from opening the input to the code is made in milliseconds,
// with a microsecond resolution.
type SumLogFmt struct {
	Name  string  `json:"name"`
	Op    string  `json:"op"`
	Bits  int     `json:"bits"`
	Bytes int64   `json:"bytes"`
	Took  float64 `json:"took"`
	Code  string  `json:"code"`
	Time  string  `json:"time"`
	RunID string  `json:"run_id"`
}

// Write writes entry to SumLogger.
func (l *SumLogger) Write(name, op string, bits int, n int64, start time.Time, code string) {

	l.fl.Write(
		zap.String("name", name),
		zap.String("op", op),
		zap.Int("bits", bits),
		zap.Int64("bytes", n),
		zap.Float64("took", round(time.Since(start).Seconds()*1000, 3)),
		zap.String("code", code),
		RunID(_runID),
	)
}

// Sync syncs SumLogger.
func (l *SumLogger) Sync() (err error) {
	return l.fl.Sync()
}

// Close closes SumLogger.
func (l *SumLogger) Close() (err error) {
	return l.fl.Close()
}

func round(f float64, n int) float64 {
	pow10n := math.Pow10(n)
	return math.Trunc(f*pow10n+0.5) / pow10n
}
