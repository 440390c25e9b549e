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

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/zaibyte/kupyna/config"
	"github.com/zaibyte/kupyna/config/settings"
	"github.com/zaibyte/kupyna/errno"
	"github.com/zaibyte/kupyna/kupyna"
	"github.com/zaibyte/kupyna/metrics"
	"github.com/zaibyte/kupyna/xerrors"
	"github.com/zaibyte/kupyna/xlog"
)

// Config is the config file of kupynasum.
//
// e.g.
//	bits = 512
//	chunk = "1MiB"
//	[log]
//	error_log_output = "/var/log/kupyna/kupynasum/error.log"
//	sum_log_output = "/var/log/kupyna/kupynasum/sum.log"
//	[metrics]
//	push_address = "http://127.0.0.1:9091"
//	push_interval = "15s"
type Config struct {
	Bits    int             `toml:"bits"`
	Chunk   config.ByteSize `toml:"chunk"`
	Log     xlog.Config     `toml:"log"`
	Metrics metrics.Config  `toml:"metrics"`
}

// loadConfig loads config from path, it's all blank if path is empty.
func loadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if path == "" {
		return cfg, nil
	}
	if err := config.Load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overwrites cfg with the flags set in command line.
func (c *Config) applyFlags(ctx *cli.Context) (err error) {
	if ctx.IsSet("bits") {
		c.Bits = ctx.Int("bits")
	}
	if ctx.IsSet("chunk") {
		c.Chunk, err = config.ParseByteSize(ctx.String("chunk"))
		if err != nil {
			return
		}
	}
	if ctx.IsSet("log-level") {
		c.Log.ErrorLogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("sum-log") {
		c.Log.SumLogOutput = ctx.String("sum-log")
	}
	return
}

// adjust fills blank fields with default values and checks them.
func (c *Config) adjust() error {
	config.AdjustInt(&c.Bits, settings.DefaultHashBits)
	config.AdjustByteSize(&c.Chunk, settings.DefaultChunkSize)

	if _, err := kupyna.New(c.Bits); err != nil {
		return err
	}
	if c.Chunk < 0 || c.Chunk > settings.MaxChunkSize {
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "chunk %s out of range (0, %s]",
			c.Chunk.String(), config.ByteSize(settings.MaxChunkSize).String())
	}
	return nil
}
