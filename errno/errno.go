// Copyright (c) 2020. Temple3x (temple3x@gmail.com)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errno provides error numbers for indicating errors.
//
// There are two kinds of errno:
// 1. Config errors
// Illegal code size, MAC size or configuration. They're deterministic,
// retry makes no sense, fix the config.
//
// 2. Input errors
// Illegal hex string, checksum mismatch in checking.
//
// Hashing itself never fails, so there is no errno for it.
//
// Errno could be annotated by xerrors, use ErrToErrno or errors.Is
// for getting the original one.
package errno

import "errors"

// An Errno is an unsigned number describing an error condition.
// It implements the error interface. The zero Errno is by convention
// a non-error, so code to convert from Errno to error should use:
//	err = nil
//	if errno != 0 {
//		err = errno
//	}
type Errno uint16

func (e Errno) Error() string {

	if e == 0 {
		return ""
	}

	if int(e) < len(errnoStr) {
		s := errnoStr[e]
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// ToErr returns nil for the zero Errno.
func (e Errno) ToErr() error {
	if e == 0 {
		return nil
	}
	return e
}

// ErrToErrno returns Errno value by error.
func ErrToErrno(err error) Errno {
	if err == nil {
		return 0
	}

	for {
		err2 := errors.Unwrap(err)
		if err2 == nil {
			break
		}
		err = err2
	}

	u, ok := err.(Errno)
	if ok {
		return u
	}

	return Errno(unknown)
}

// IsConfigError returns true if err is caused by an illegal config.
func IsConfigError(err error) bool {
	switch ErrToErrno(err) {
	case ErrInvalidHashSize, ErrInvalidMACSize, ErrInvalidConfig:
		return true
	default:
		return false
	}
}

const (
	invalidHashSize  = 1
	invalidMACSize   = 2
	invalidConfig    = 3
	invalidHex       = 4
	checksumMismatch = 5
	unknown          = 6
)

// Error table.
// Please add errno in order.
var errnoStr = [...]string{
	invalidHashSize:  "invalid hash size",
	invalidMACSize:   "invalid MAC size",
	invalidConfig:    "invalid config",
	invalidHex:       "invalid hex string",
	checksumMismatch: "checksum mismatch",
	unknown:          "unknown error",
}

var (
	ErrInvalidHashSize  = Errno(invalidHashSize) // Code size isn't a multiple of 8 in [8, 512].
	ErrInvalidMACSize   = Errno(invalidMACSize)  // MAC (key) size isn't 256, 384 or 512.
	ErrInvalidConfig    = Errno(invalidConfig)
	ErrInvalidHex       = Errno(invalidHex)
	ErrChecksumMismatch = Errno(checksumMismatch)
	ErrUnknown          = Errno(unknown)
)
