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

// Settings is the global settings of kupyna tools.
// Don't modify it unless you totally know what will happen.
package settings

import "time"

const (
	kb = 1024
	mb = kb * 1024
)

// AppName is the name of the checksum tool,
// it's the default log directory & metrics push job name too.
const AppName = "kupynasum"

const (
	// DefaultHashBits is the code length when it's not set.
	DefaultHashBits = 256

	// DefaultChunkSize is the read buffer size in streaming files.
	// It's a multiple of both block sizes (64B & 128B).
	DefaultChunkSize = 64 * kb
	// MaxChunkSize is the maximum read buffer size.
	// Bigger buffer won't make hashing faster.
	MaxChunkSize = 64 * mb
)

const (
	// DefaultLogOutput is the default error log output.
	// Logs go to a file under DefaultLogRoot only when it's configured.
	DefaultLogOutput = "stderr"
	// DefaultLogLevel is the default error log level,
	// tools only report problems by default.
	DefaultLogLevel = "warn"

	// DefaultLogRoot is the default log files path root.
	// e.g.:
	// <DefaultLogRoot>/<appName>/error.log
	// & <DefaultLogRoot>/<appName>/sum.log
	DefaultLogRoot = "/var/log/kupyna"
)

// DefaultPushInterval is the interval of pushing metrics to Prometheus Pushgateway.
const DefaultPushInterval = 15 * time.Second
