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

import "hash"

// digest is the streaming form of Kupyna.
// Unlike Context.Hash, it only takes whole bytes.
type digest struct {
	s      state
	rounds int
	bits   int

	buf    [largeStateSize]byte
	remain int
	length uint64 // Bytes written since Reset.
}

// NewDigest returns a hash.Hash computing bits long Kupyna codes.
// Its codes are the same as Context.Hash's for the same bytes.
func NewDigest(bits int) (hash.Hash, error) {
	d, err := newDigest(bits)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newDigest(bits int) (*digest, error) {
	if err := checkHashBits(bits); err != nil {
		return nil, err
	}
	d := &digest{bits: bits}
	d.s.columns, d.rounds = mode(bits)
	d.Reset()
	return d, nil
}

// Write adds p to the sequence of bytes hashed by d.
// It always writes all of p and never fails; the count and error result are for implementing io.Writer.
func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.length += uint64(nn)
	bs := d.s.size()

	if d.remain > 0 {
		n := copy(d.buf[d.remain:bs], p)
		d.remain += n
		if d.remain == bs {
			compress(&d.s, d.rounds, d.buf[:bs])
			d.remain = 0
		}
		p = p[n:]
	}

	if len(p) >= bs {
		n := len(p) - len(p)%bs
		compress(&d.s, d.rounds, p[:n])
		p = p[n:]
	}

	if len(p) > 0 {
		d.remain = copy(d.buf[:], p)
	}
	return
}

// Sum appends the current code to b and returns the resulting slice.
// It does not change the underlying hash state.
func (d *digest) Sum(b []byte) []byte {
	d0 := *d
	var code [Size512]byte
	d0.sum(code[:d0.Size()])
	return append(b, code[:d0.Size()]...)
}

// sum pads the buffered tail and finishes d.
func (d *digest) sum(code []byte) {
	var pad [maxPaddingSize]byte
	p := appendPadding(pad[:0], d.buf[:d.remain], d.length*8, d.s.size())
	compress(&d.s, d.rounds, p)
	final(&d.s, d.rounds, code)
}

func (d *digest) Reset() {
	d.s.reset()
	d.remain = 0
	d.length = 0
}

func (d *digest) Size() int { return d.bits / 8 }

func (d *digest) BlockSize() int { return d.s.size() }

// mac is the streaming form of KMAC.
// key || pad(key) is written on Reset, the rest is written in Sum.
type mac struct {
	d      digest
	key    []byte
	head   []byte // key || pad(key)
	msgLen uint64
}

// NewMAC returns a hash.Hash computing the KMAC with key.
// The MAC size is the key size, it must be 256, 384 or 512 bits.
// Its MACs are the same as Context.Mac's for the same bytes.
func NewMAC(key []byte) (hash.Hash, error) {
	bits := len(key) * 8
	if err := checkMACBits(bits); err != nil {
		return nil, err
	}
	d, err := newDigest(bits)
	if err != nil {
		return nil, err
	}

	m := &mac{d: *d, key: append([]byte(nil), key...)}
	prefix, tail := splitMessage(m.key, uint64(bits), d.BlockSize())
	m.head = append(make([]byte, 0, prefix+maxPaddingSize), m.key[:prefix]...)
	m.head = appendPadding(m.head, tail, uint64(bits), d.BlockSize())
	m.Reset()
	return m, nil
}

func (m *mac) Write(p []byte) (int, error) {
	m.msgLen += uint64(len(p))
	return m.d.Write(p)
}

// Sum appends the current MAC to b and returns the resulting slice.
// It does not change the underlying hash state.
func (m *mac) Sum(b []byte) []byte {
	d0 := m.d

	var tail [maxPaddingSize + Size512]byte
	p := appendPaddingSuffix(tail[:0], m.msgLen*8, d0.BlockSize())
	for _, k := range m.key {
		p = append(p, ^k)
	}
	d0.Write(p)

	var code [Size512]byte
	d0.sum(code[:d0.Size()])
	return append(b, code[:d0.Size()]...)
}

func (m *mac) Reset() {
	m.d.Reset()
	m.d.Write(m.head)
	m.msgLen = 0
}

func (m *mac) Size() int { return m.d.Size() }

func (m *mac) BlockSize() int { return m.d.BlockSize() }
