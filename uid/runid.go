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

// Package uid provides run ID, which tags all log entries
// and metrics pushes of one process run.
package uid

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/templexxx/tsc"
	"github.com/templexxx/xhex"

	"github.com/zaibyte/kupyna/errno"
	"github.com/zaibyte/kupyna/kupyna"
	"github.com/zaibyte/kupyna/xerrors"
)

// runid struct:
// +-----------------+---------+---------------+
// |  instanceID(48) | pid(16) | timestamp(64) |
// +-----------------+---------+---------------+
//
// Total length: 16B, encoded in 32 hex codes.
//
// instanceID: 48bit, MAC address
// pid: 16bit, low bits of process ID
// timestamp: 64bit, nanoseconds
//
// Maybe not unique but it's acceptable.

const runIDSize = 16

var _instanceID = makeInstanceID()

func makeInstanceID() uint64 {
	p := make([]byte, 8)
	copy(p[:6], uuid.NodeID())
	return binary.LittleEndian.Uint64(p)
}

// InstanceID returns the hex string of the instance ID (MAC address).
func InstanceID() string {
	p := make([]byte, 8)
	binary.LittleEndian.PutUint64(p, _instanceID)
	return hex.EncodeToString(p[:6])
}

// MakeRunID makes a run ID with the present time.
func MakeRunID() string {
	return MakeRunIDWithTime(time.Unix(0, tsc.UnixNano()))
}

// MakeRunIDWithTime makes a run ID with t.
func MakeRunIDWithTime(t time.Time) string {
	var b [runIDSize + runIDSize*2]byte

	binary.LittleEndian.PutUint64(b[:8], uint64(os.Getpid()&0xffff)<<48|_instanceID)
	binary.LittleEndian.PutUint64(b[8:16], uint64(t.UnixNano()))

	xhex.Encode(b[runIDSize:], b[:runIDSize])
	return string(b[runIDSize:])
}

// ParseRunID parses runID.
func ParseRunID(runID string) (instanceID string, pid uint16, t time.Time, err error) {

	if len(runID) != runIDSize*2 {
		err = xerrors.WithMessagef(errno.ErrInvalidHex, "run id length: %d", len(runID))
		return
	}

	b, err := kupyna.ParseHex(runID)
	if err != nil {
		return
	}

	instanceID = hex.EncodeToString(b[:6])
	pid = binary.LittleEndian.Uint16(b[6:8])
	t = time.Unix(0, int64(binary.LittleEndian.Uint64(b[8:16])))
	return
}
