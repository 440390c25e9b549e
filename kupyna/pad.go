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

import "encoding/binary"

// lengthFieldSize is the size of the message length field in padding (96 bits).
const lengthFieldSize = 12

// maxPaddingSize is enough for the worst case:
// block-1 remaining bytes, terminator and length field span two blocks.
const maxPaddingSize = 2 * largeStateSize

// splitMessage returns the length of the full-block prefix of a msgBits long message,
// and the tail after it (the remaining bytes and the partial byte if any).
func splitMessage(msg []byte, msgBits uint64, blockSize int) (prefix int, tail []byte) {
	n := int(msgBits / 8)
	prefix = n - n%blockSize
	if msgBits%8 != 0 {
		n++
	}
	return prefix, msg[prefix:n]
}

// appendPadding appends tail and its padding to dst.
// tail is the message after its full-block prefix, msgBits is the whole message length.
// The appended bytes are a positive multiple of blockSize.
func appendPadding(dst, tail []byte, msgBits uint64, blockSize int) []byte {

	dst = append(dst, tail...)

	extra := msgBits % 8
	if extra != 0 {
		// Drop the bits beyond the message, then set the terminator bit right after it.
		last := len(dst) - 1
		dst[last] = dst[last]&^(0xff>>extra) | 1<<(7-extra)
		return appendZerosAndLength(dst, msgBits, blockSize)
	}
	return appendPaddingSuffix(dst, msgBits, blockSize)
}

// appendPaddingSuffix appends the padding of a byte-aligned message
// whose tail is already in place: 0x80, zeros and the length field.
func appendPaddingSuffix(dst []byte, msgBits uint64, blockSize int) []byte {
	dst = append(dst, 0x80)
	return appendZerosAndLength(dst, msgBits, blockSize)
}

func appendZerosAndLength(dst []byte, msgBits uint64, blockSize int) []byte {

	// (-msgBits - 97) mod blockBits, blockBits divides 2^64 so unsigned wrapping is fine.
	zeros := int((-msgBits - 97) % uint64(blockSize*8) / 8)
	for i := 0; i < zeros; i++ {
		dst = append(dst, 0)
	}

	var l [lengthFieldSize]byte
	binary.LittleEndian.PutUint64(l[:8], msgBits) // The upper 32 bits are always zero.
	return append(dst, l[:]...)
}
