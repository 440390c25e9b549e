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

// kupynasum prints or checks Kupyna (DSTU 7564:2014) codes and MACs.
//
// Usage:
//	kupynasum [--bits N] [--mac-key HEX] [--config FILE] [--chunk 64KiB] [FILE...]
//	kupynasum --check SUMFILE
//
// Output lines are "<hex>  <name>", "-" (or no FILE) is stdin.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/zaibyte/kupyna/config/settings"
)

const version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", settings.AppName, err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      settings.AppName,
		Usage:     "print or check Kupyna codes",
		UsageText: settings.AppName + " [options] [FILE...]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bits",
				Aliases: []string{"b"},
				Usage:   fmt.Sprintf("code length in bits, multiple of 8 in [8, 512] (default: %d)", settings.DefaultHashBits),
			},
			&cli.StringFlag{
				Name:    "mac-key",
				Aliases: []string{"k"},
				Usage:   "make KMAC with the hex key (32, 48 or 64 bytes), MAC length is the key length",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file",
			},
			&cli.StringFlag{
				Name:  "chunk",
				Usage: "read buffer size, e.g. 64KiB",
			},
			&cli.StringFlag{
				Name:  "check",
				Usage: "read codes from the file and check them",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "error log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "sum-log",
				Usage: "record every code in the file as JSON",
			},
		},
		Action: sumCmd,
	}
}
