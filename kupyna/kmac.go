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

package kupyna

import (
	"github.com/zaibyte/kupyna/errno"
	"github.com/zaibyte/kupyna/xerrors"
)

// Mac writes the KMAC of the first msgBits bits of msg into dst.
//
// The MAC size is the key size, it must be 256, 384 or 512 bits
// and equal to the code size of c, or errno.ErrInvalidMACSize returns
// without any computation.
//
// The hashed message is:
//	key || pad(key) || msg || pad(msg) || ^key
// where pad is the Kupyna padding and key, msg are padded independently.
//
// Warn:
// len(dst) must >= c.Size() and msgBits must <= len(msg)*8,
// it panics otherwise.
func (c *Context) Mac(dst, key, msg []byte, msgBits uint64) error {
	keyBits := len(key) * 8
	if err := checkMACBits(keyBits); err != nil {
		return err
	}
	if keyBits != c.bits {
		return xerrors.WithMessagef(errno.ErrInvalidMACSize,
			"kupyna: %d bits key with %d bits context", keyBits, c.bits)
	}
	if msgBits > uint64(len(msg))*8 {
		panic("kupyna: message shorter than its bit length")
	}

	input := macInput(key, msg, msgBits, c.s.size())
	c.Hash(dst, input, uint64(len(input))*8)
	return nil
}

// MAC returns the KMAC of msg, the MAC size is the key size.
func MAC(key, msg []byte) ([]byte, error) {
	if err := checkMACBits(len(key) * 8); err != nil {
		return nil, err
	}
	c, err := New(len(key) * 8)
	if err != nil {
		return nil, err
	}
	tag := make([]byte, c.Size())
	if err = c.Mac(tag, key, msg, uint64(len(msg))*8); err != nil {
		return nil, err
	}
	return tag, nil
}

func checkMACBits(bits int) error {
	switch bits {
	case 256, 384, 512:
		return nil
	default:
		return xerrors.WithMessagef(errno.ErrInvalidMACSize, "kupyna: %d bits", bits)
	}
}

// macInput builds the message hashed by KMAC.
//
// Key and message are split into full-block prefix and tail on their own,
// so a long message keeps its prefix whatever the key is.
func macInput(key, msg []byte, msgBits uint64, blockSize int) []byte {

	keyBits := uint64(len(key)) * 8
	keyPrefix, keyTail := splitMessage(key, keyBits, blockSize)
	msgPrefix, msgTail := splitMessage(msg, msgBits, blockSize)

	buf := make([]byte, 0, keyPrefix+msgPrefix+len(key)+2*maxPaddingSize)
	buf = append(buf, key[:keyPrefix]...)
	buf = appendPadding(buf, keyTail, keyBits, blockSize)
	buf = append(buf, msg[:msgPrefix]...)
	buf = appendPadding(buf, msgTail, msgBits, blockSize)

	start := len(buf)
	buf = append(buf, key...)
	for i := start; i < len(buf); i++ {
		buf[i] ^= 0xff
	}
	return buf
}
