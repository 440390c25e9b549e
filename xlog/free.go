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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FreeLogger is a logger without level, msg ... (any default fields except time)
// for highly specialised.
type FreeLogger struct {
	l     *zap.Logger
	close func()
}

func freeEncoderConf() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,
		LineEnding: zapcore.DefaultLineEnding,
	}
}

// NewFreeLogger return a new FreeLogger,
// fields will be added to every entry.
func NewFreeLogger(outputPath string, fields ...zap.Field) (logger *FreeLogger, err error) {

	syncer, closeFn, err := openSink(outputPath)
	if err != nil {
		return
	}

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(freeEncoderConf()), syncer, lvl)
	if len(fields) != 0 {
		core = core.With(fields)
	}

	return &FreeLogger{zap.New(core), closeFn}, nil
}

// Write logs f in info level.
func (l *FreeLogger) Write(f ...zap.Field) {
	l.l.Info("", f...)
}

// Sync syncs FreeLogger.
func (l *FreeLogger) Sync() error {
	return l.l.Sync()
}

// Close closes FreeLogger.
func (l *FreeLogger) Close() error {
	_ = l.l.Sync()
	l.close()
	return nil
}
