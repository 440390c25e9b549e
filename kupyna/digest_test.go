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
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaibyte/kupyna/errno"
)

func TestDigest(t *testing.T) {
	for _, v := range hashVectors {
		if v.msgBits != uint64(len(v.msg))*8 {
			continue
		}
		d, err := NewDigest(v.bits)
		assert.Nil(t, err)
		assert.Equal(t, v.bits/8, d.Size())

		_, _ = d.Write(v.msg)
		assert.Equal(t, v.exp, strings.ToUpper(Hex(d.Sum(nil))))
	}

	d, err := NewDigest(256)
	assert.Nil(t, err)
	_, _ = d.Write([]byte(fox))
	assert.Equal(t, "996899F2D7422CEAF552475036B2DC120607EFF538ABF2B8DFF471A98A4740C6", strings.ToUpper(Hex(d.Sum(nil))))
}

func TestDigest_SplitWrite(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for _, bits := range []int{8, 256, 384, 512} {
		d, err := NewDigest(bits)
		assert.Nil(t, err)
		columns, _ := mode(bits)
		assert.Equal(t, columns*rows, d.BlockSize())

		for i := 0; i < 32; i++ {
			msg := make([]byte, rnd.Intn(1000))
			rnd.Read(msg)
			exp, err := Sum(bits, msg)
			assert.Nil(t, err)

			d.Reset()
			p := msg
			for len(p) > 0 {
				n := rnd.Intn(len(p)) + 1
				_, _ = d.Write(p[:n])
				p = p[n:]
			}
			assert.Equal(t, exp, d.Sum(nil), "bits: %d, len: %d", bits, len(msg))
		}
	}
}

func TestDigest_SumKeepState(t *testing.T) {
	d, err := NewDigest(512)
	assert.Nil(t, err)

	msg := seq(256)
	_, _ = d.Write(msg[:100])
	first := d.Sum(nil)
	assert.Equal(t, first, d.Sum(nil))

	_, _ = d.Write(msg[100:])
	assert.Equal(t, hashVectors[9].exp, strings.ToUpper(Hex(d.Sum(nil))))

	prefix := []byte("prefix")
	act := d.Sum(prefix)
	assert.Equal(t, prefix, act[:len(prefix)])
	assert.Equal(t, hashVectors[9].exp, strings.ToUpper(Hex(act[len(prefix):])))

	d.Reset()
	_, _ = d.Write(msg[:100])
	assert.Equal(t, first, d.Sum(nil))
}

func TestNewDigest_Invalid(t *testing.T) {
	d, err := NewDigest(12)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, errno.ErrInvalidHashSize))
}

func TestMACStream(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, v := range macVectors {
		if v.msgBits%8 != 0 {
			continue
		}
		m, err := NewMAC(v.key)
		assert.Nil(t, err)
		assert.Equal(t, len(v.key), m.Size())

		p := v.msg
		for len(p) > 0 {
			n := rnd.Intn(len(p)) + 1
			_, _ = m.Write(p[:n])
			p = p[n:]
		}
		assert.Equal(t, v.exp, strings.ToUpper(Hex(m.Sum(nil))), "key: %d, msgBits: %d", len(v.key), v.msgBits)
		// Again.
		assert.Equal(t, v.exp, strings.ToUpper(Hex(m.Sum(nil))))

		m.Reset()
		_, _ = m.Write(v.msg)
		assert.Equal(t, v.exp, strings.ToUpper(Hex(m.Sum(nil))))
	}
}

func TestMACStream_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for _, size := range []int{32, 48, 64} {
		key := make([]byte, size)
		rnd.Read(key)
		m, err := NewMAC(key)
		assert.Nil(t, err)

		for i := 0; i < 16; i++ {
			msg := make([]byte, rnd.Intn(700))
			rnd.Read(msg)

			exp, err := MAC(key, msg)
			assert.Nil(t, err)

			m.Reset()
			_, _ = m.Write(msg)
			assert.Equal(t, exp, m.Sum(nil))
		}
	}
}

func TestNewMAC_Invalid(t *testing.T) {
	for _, n := range []int{0, 1, 16, 40, 128} {
		m, err := NewMAC(make([]byte, n))
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, errno.ErrInvalidMACSize))
	}
}
