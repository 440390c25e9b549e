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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_Pad_7Bits(t *testing.T) {
	c, err := New(256)
	assert.Nil(t, err)

	exp := make([]byte, 64)
	exp[0] = 0xab
	exp[52] = 0x07

	for _, b := range []byte{0xaa, 0xab} {
		prefix := c.pad([]byte{b}, 7)
		assert.Equal(t, 0, prefix)
		assert.Equal(t, exp, c.padding[:c.padLen])
	}
}

func TestContext_Pad_Empty(t *testing.T) {
	for _, bits := range []int{256, 512} {
		c, err := New(bits)
		assert.Nil(t, err)

		prefix := c.pad(nil, 0)
		assert.Equal(t, 0, prefix)
		assert.Equal(t, c.BlockSize(), c.padLen)
		assert.Equal(t, byte(0x80), c.padding[0])
		for _, v := range c.padding[1:c.padLen] {
			assert.Equal(t, byte(0), v)
		}
	}
}

func TestContext_Pad(t *testing.T) {
	msg := make([]byte, 400)
	for i := range msg {
		msg[i] = 0xff
	}

	for _, bits := range []int{8, 256, 264, 512} {
		c, err := New(bits)
		assert.Nil(t, err)
		bs := c.BlockSize()

		for msgBits := uint64(0); msgBits <= uint64(len(msg))*8; msgBits += 3 {
			prefix := c.pad(msg, msgBits)
			assert.Equal(t, 0, prefix%bs)
			assert.True(t, uint64(prefix)*8 <= msgBits)
			assert.True(t, msgBits-uint64(prefix)*8 < uint64(bs)*8)

			p := c.padding[:c.padLen]
			tailBits := msgBits - uint64(prefix)*8
			assert.True(t, len(p) > 0)
			assert.Equal(t, 0, len(p)%bs, "msgBits: %d", msgBits)
			assert.True(t, uint64(len(p))*8 > tailBits)

			// Terminator right after the message, zeros after it till the length field.
			n := tailBits / 8
			extra := tailBits % 8
			last := p[n]
			assert.Equal(t, byte(0xff)&^(0xff>>extra)|1<<(7-extra), last, "msgBits: %d", msgBits)
			for _, v := range p[n+1 : len(p)-lengthFieldSize] {
				assert.Equal(t, byte(0), v)
			}

			l := p[len(p)-lengthFieldSize:]
			assert.Equal(t, msgBits, binary.LittleEndian.Uint64(l[:8]))
			assert.Equal(t, []byte{0, 0, 0, 0}, l[8:])
		}
	}
}

func TestSplitMessage(t *testing.T) {
	msg := make([]byte, 200)

	prefix, tail := splitMessage(msg, 1600, 64)
	assert.Equal(t, 192, prefix)
	assert.Equal(t, 8, len(tail))

	prefix, tail = splitMessage(msg, 1023, 64)
	assert.Equal(t, 64, prefix)
	assert.Equal(t, 64, len(tail))

	prefix, tail = splitMessage(msg, 1024, 128)
	assert.Equal(t, 128, prefix)
	assert.Equal(t, 0, len(tail))

	prefix, tail = splitMessage(msg, 1, 128)
	assert.Equal(t, 0, prefix)
	assert.Equal(t, 1, len(tail))
}
