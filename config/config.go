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

// Package config provides functions to load TOML config files
// and to fill the blank fields with default values.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"

	"github.com/zaibyte/kupyna/errno"
	"github.com/zaibyte/kupyna/xerrors"
)

// Load decodes TOML file in path into v.
// Undecoded keys are treated as errors, they are typos in most cases.
func Load(path string, v interface{}) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "load %s: %s", path, err.Error())
	}
	if un := md.Undecoded(); len(un) != 0 {
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "load %s: unknown key: %s", path, un[0].String())
	}
	return nil
}

// Adjust sets *v to defVal if it's empty.
func Adjust(v *string, defVal string) {
	if len(*v) == 0 {
		*v = defVal
	}
}

// AdjustInt sets *v to defVal if it's 0.
func AdjustInt(v *int, defVal int) {
	if *v == 0 {
		*v = defVal
	}
}

// AdjustInt64 sets *v to defVal if it's 0.
func AdjustInt64(v *int64, defVal int64) {
	if *v == 0 {
		*v = defVal
	}
}

// AdjustDuration sets v to defVal if it's 0.
func AdjustDuration(v *Duration, defVal time.Duration) {
	if v.Duration == 0 {
		v.Duration = defVal
	}
}

// AdjustByteSize sets v to defVal if it's 0.
func AdjustByteSize(v *ByteSize, defVal ByteSize) {
	if *v == 0 {
		*v = defVal
	}
}

// Duration is a wrapper of time.Duration for TOML,
// e.g. "15s", "1m30s".
type Duration struct {
	time.Duration
}

// MarshalText returns the text form of d.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// ByteSize is a size in bytes for TOML,
// written in human readable form with binary prefixes, e.g. "64KiB", "4MB" (4 * 1024 * 1024).
type ByteSize int64

// ParseByteSize parses s into ByteSize.
func ParseByteSize(s string) (ByteSize, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, xerrors.WithMessagef(errno.ErrInvalidConfig, "byte size %q", s)
	}
	if n < 0 {
		return 0, xerrors.WithMessagef(errno.ErrInvalidConfig, "negative byte size %q", s)
	}
	return ByteSize(n), nil
}

// MarshalText returns the text form of b.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a byte size string.
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := ParseByteSize(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b ByteSize) String() string {
	return units.BytesSize(float64(b))
}
