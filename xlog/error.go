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
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapProperties records some information about zap.
type ZapProperties struct {
	Core   zapcore.Core
	Syncer zapcore.WriteSyncer
	Level  zap.AtomicLevel // Level can be used for changing log level online too.
}

// ErrorLogger is used for recording the common application log,
// xlog provides global logger for more convenient.
//
// In practice, ErrorLogger is just a global logger's container,
// it won't be used directly.
type ErrorLogger struct {
	l     *zap.Logger
	close func()
	Props *ZapProperties
}

// ErrLogFmt: error logger output format.
// It's used for log collector process(e.g. elastic/filebeat).
//
// ps:
// Sometimes, there is no "run_id" or there will be more fields.
type ErrLogFmt struct {
	Level string `json:"level"`
	Time  string `json:"time"`
	Msg   string `json:"msg"`
	RunID string `json:"run_id"`
}

// default without caller and stack trace,
func defaultEncoderConf() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// openSink opens outputPath for appending.
// "stderr", "stdout" or "" (stderr) are the standard streams,
// otherwise it's a file path and the directory will be made if not exist.
func openSink(outputPath string) (zapcore.WriteSyncer, func(), error) {
	if outputPath == "" {
		outputPath = "stderr"
	}
	if outputPath != "stderr" && outputPath != "stdout" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			return nil, nil, err
		}
	}
	return zap.Open(outputPath)
}

// NewErrorLogger returns a logger with its properties.
//
// Legal Levels:
// info: "info", "INFO", ""
// debug: "debug", "DEBUG"
// warn: "warn", "WARN"
// error: "error", "ERROR"
// panic: "panic", "PANIC"
// fatal: "fatal", "FATAL"
func NewErrorLogger(outputPath, level string) (logger *ErrorLogger, err error) {

	lvl := zap.NewAtomicLevel()
	err = lvl.UnmarshalText([]byte(level))
	if err != nil {
		return
	}

	syncer, closeFn, err := openSink(outputPath)
	if err != nil {
		return
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(defaultEncoderConf()), syncer, lvl)
	props := &ZapProperties{
		Core:   core,
		Syncer: syncer,
		Level:  lvl,
	}

	return &ErrorLogger{
		l:     zap.New(core),
		close: closeFn,
		Props: props,
	}, nil
}

func newNopLogger() *ErrorLogger {
	return &ErrorLogger{
		l:     zap.NewNop(),
		close: func() {},
		Props: &ZapProperties{
			Core:   zapcore.NewNopCore(),
			Syncer: zapcore.AddSync(nopWriter{}),
			Level:  zap.NewAtomicLevel(),
		},
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// Write implements io.Writer
func (l *ErrorLogger) Write(p []byte) (n int, err error) {
	l.Error(string(p))
	return len(p), nil
}

func (l *ErrorLogger) Error(msg string, f ...zap.Field) {

	l.l.Error(msg, f...)
}

func (l *ErrorLogger) Info(msg string, f ...zap.Field) {

	l.l.Info(msg, f...)
}

func (l *ErrorLogger) Warn(msg string, f ...zap.Field) {

	l.l.Warn(msg, f...)
}

func (l *ErrorLogger) Debug(msg string, f ...zap.Field) {

	l.l.Debug(msg, f...)
}

func (l *ErrorLogger) Fatal(msg string, f ...zap.Field) {

	l.l.Fatal(msg, f...)
}

// Sync syncs ErrorLogger.
func (l *ErrorLogger) Sync() error {
	return l.l.Sync()
}

// Close flushes and closes the output.
func (l *ErrorLogger) Close() error {
	_ = l.l.Sync()
	l.close()
	return nil
}

// DebugOn enable debug level.
func (l *ErrorLogger) DebugOn() {
	l.Props.Level.SetLevel(zap.DebugLevel)
}

// DebugOff enable info level.
func (l *ErrorLogger) DebugOff() {
	l.Props.Level.SetLevel(zap.InfoLevel)
}

// GetLvl return lvl in string.
func (l *ErrorLogger) GetLvl() string {
	return l.Props.Level.String()
}
