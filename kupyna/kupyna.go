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
//
// Package kupyna implements the Kupyna hash function (DSTU 7564:2014)
// for every code length from 8 to 512 bits in 8-bit steps,
// and the Kupyna keyed MAC (KMAC) for 256, 384 and 512 bits.
//
// Codes of at most 256 bits use a 64-byte state and 10 rounds,
// longer codes use a 128-byte state and 14 rounds.
//
// Usage:
// 1. Whole message (any bit length):
// c, err := New(256)
// c.Hash(code, msg, msgBits)
// c.Mac(tag, key, msg, msgBits)
// ...
// 2. Streaming (byte-aligned):
// d, err := NewDigest(256)
// d.Write()
// d.Sum()
// 3.
// Sum256(), Sum384(), Sum512(), Sum(), SumBits(), MAC()
//
// A Context is not safe for concurrent use, use one Context for each goroutine.
// The package-level functions are safe.
package kupyna

import (
	"strings"

	"github.com/templexxx/xhex"

	"github.com/zaibyte/kupyna/errno"
	"github.com/zaibyte/kupyna/xerrors"
)

const (
	// Size256 is the size of Kupyna-256 code in bytes.
	Size256 = 32
	// Size384 is the size of Kupyna-384 code in bytes.
	Size384 = 48
	// Size512 is the size of Kupyna-512 code in bytes.
	Size512 = 64

	// MaxBits is the longest code in bits.
	MaxBits = 512
)

// Context holds the state of Kupyna with a chosen code length.
// It's reset at the beginning of every Hash or Mac call,
// nothing is carried between calls.
type Context struct {
	s      state
	rounds int
	bits   int

	padding [maxPaddingSize]byte
	padLen  int
}

// New returns a Context producing bits long codes.
// bits must be a multiple of 8 in [8, 512].
func New(bits int) (*Context, error) {
	c := new(Context)
	if err := c.Init(bits); err != nil {
		return nil, err
	}
	return c, nil
}

// Init (re)initializes c for bits long codes.
// c is untouched when bits is illegal.
func (c *Context) Init(bits int) error {
	if err := checkHashBits(bits); err != nil {
		return err
	}

	c.s.columns, c.rounds = mode(bits)
	c.bits = bits
	c.s.reset()
	c.padLen = 0
	return nil
}

func checkHashBits(bits int) error {
	if bits <= 0 || bits > MaxBits || bits%8 != 0 {
		return xerrors.WithMessagef(errno.ErrInvalidHashSize, "kupyna: %d bits", bits)
	}
	return nil
}

// mode returns the state columns & rounds for bits long codes.
func mode(bits int) (columns, rounds int) {
	if bits <= 256 {
		return smallColumns, smallRounds
	}
	return largeColumns, largeRounds
}

// Size returns the code size in bytes.
func (c *Context) Size() int { return c.bits / 8 }

// BlockSize returns the block (and state) size in bytes.
func (c *Context) BlockSize() int { return c.s.size() }

// Rounds returns the rounds of P & Q.
func (c *Context) Rounds() int { return c.rounds }

// Columns returns the number of 8-byte columns in state.
func (c *Context) Columns() int { return c.s.columns }

// Hash writes the code of the first msgBits bits of msg into dst.
// Bits are taken from the most significant one in each byte,
// so the last byte may be partial.
//
// Warn:
// len(dst) must >= c.Size() and msgBits must <= len(msg)*8,
// it panics otherwise.
func (c *Context) Hash(dst, msg []byte, msgBits uint64) {
	if len(dst) < c.Size() {
		panic("kupyna: output buffer too small")
	}
	if msgBits > uint64(len(msg))*8 {
		panic("kupyna: message shorter than its bit length")
	}

	c.s.reset()
	prefix := c.pad(msg, msgBits)
	compress(&c.s, c.rounds, msg[:prefix])
	compress(&c.s, c.rounds, c.padding[:c.padLen])
	final(&c.s, c.rounds, dst[:c.Size()])
}

// pad fills c.padding with the message tail and its padding,
// returns the length of the message full-block prefix.
func (c *Context) pad(msg []byte, msgBits uint64) int {
	prefix, tail := splitMessage(msg, msgBits, c.s.size())
	c.padLen = len(appendPadding(c.padding[:0], tail, msgBits, c.s.size()))
	return prefix
}

// Sum returns the bits long code of msg.
func Sum(bits int, msg []byte) ([]byte, error) {
	return SumBits(bits, msg, uint64(len(msg))*8)
}

// SumBits returns the bits long code of the first msgBits bits of msg.
func SumBits(bits int, msg []byte, msgBits uint64) ([]byte, error) {
	c, err := New(bits)
	if err != nil {
		return nil, err
	}
	code := make([]byte, c.Size())
	c.Hash(code, msg, msgBits)
	return code, nil
}

// Sum256 returns the Kupyna-256 code of msg.
func Sum256(msg []byte) (code [Size256]byte) {
	sumTo(code[:], msg)
	return
}

// Sum384 returns the Kupyna-384 code of msg.
func Sum384(msg []byte) (code [Size384]byte) {
	sumTo(code[:], msg)
	return
}

// Sum512 returns the Kupyna-512 code of msg.
func Sum512(msg []byte) (code [Size512]byte) {
	sumTo(code[:], msg)
	return
}

func sumTo(code, msg []byte) {
	var c Context
	_ = c.Init(len(code) * 8)
	c.Hash(code, msg, uint64(len(msg))*8)
}

// Hex returns the lowercase hex encoding of code.
func Hex(code []byte) string {
	if len(code) == 0 {
		return ""
	}
	dst := make([]byte, len(code)*2)
	xhex.Encode(dst, code)
	return string(dst)
}

// ParseHex decodes hex string s in either case, it's the inverse of Hex.
// Any non-hex character makes errno.ErrInvalidHex.
func ParseHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, xerrors.WithMessagef(errno.ErrInvalidHex, "odd length: %d", len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return nil, xerrors.WithMessagef(errno.ErrInvalidHex, "invalid byte %#U at %d", rune(s[i]), i)
		}
	}

	dst := make([]byte, len(s)/2)
	if len(s) == 0 {
		return dst, nil
	}
	if err := xhex.Decode(dst, []byte(strings.ToLower(s))); err != nil {
		return nil, xerrors.WithMessage(errno.ErrInvalidHex, err.Error())
	}
	return dst, nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
