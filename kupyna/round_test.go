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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSboxes(t *testing.T) {
	for k := range sboxes {
		var seen [256]bool
		for _, v := range sboxes[k] {
			assert.False(t, seen[v], "sbox: %d, dup: %#x", k, v)
			seen[v] = true
		}
	}
	assert.Equal(t, [4]byte{0xa8, 0xce, 0x93, 0x68},
		[4]byte{sboxes[0][0], sboxes[1][0], sboxes[2][0], sboxes[3][0]})
}

func TestMDS(t *testing.T) {
	assert.Equal(t, [rows]byte{1, 1, 5, 1, 8, 6, 7, 4}, mds[0])
	for r := 1; r < rows; r++ {
		for c := 0; c < rows; c++ {
			assert.Equal(t, mds[0][(c-r+rows)%rows], mds[r][c])
		}
	}
}

func TestMixTable(t *testing.T) {
	for k := 0; k < rows; k++ {
		for x := 0; x < 256; x++ {
			w := mixTable[k][x]
			for r := 0; r < rows; r++ {
				assert.Equal(t, mulGF(sboxes[k&3][x], mds[r][k]), byte(w>>(8*uint(r))))
			}
		}
	}
}

func TestAddRoundConstant_P(t *testing.T) {
	s := state{columns: smallColumns}
	addRoundConstant(&s, 3, xorConstant)
	for c := 0; c < s.columns; c++ {
		assert.Equal(t, byte(c*0x10^3), s.b[c*rows])
		for r := 1; r < rows; r++ {
			assert.Equal(t, byte(0), s.b[c*rows+r])
		}
	}
}

func TestAddRoundConstant_Q(t *testing.T) {
	s := state{columns: smallColumns}
	for r := 0; r < rows; r++ {
		s.b[r] = 0xff
	}
	addRoundConstant(&s, 0, addConstant)

	// 0xffffffffffffffff + 0x70f0f0f0f0f0f0f3 wraps around.
	assert.Equal(t, []byte{0xf2, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0x70}, s.b[0:rows])
	// Last column adds the bare constant.
	assert.Equal(t, []byte{0xf3, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0x00}, s.b[7*rows:8*rows])

	assert.Equal(t, uint64(0xf5f0f0f0f0f0f0f3), qRoundConstant(0, largeColumns, 0x05))
}

func TestShiftBytes(t *testing.T) {
	for _, columns := range []int{smallColumns, largeColumns} {
		s := state{columns: columns}
		for c := 0; c < columns; c++ {
			for r := 0; r < rows; r++ {
				s.b[c*rows+r] = byte(c)
			}
		}
		shiftBytes(&s)

		for c := 0; c < columns; c++ {
			for r := 0; r < rows; r++ {
				from := (c - rowShift(r, columns) + columns) % columns
				assert.Equal(t, byte(from), s.b[c*rows+r], "columns: %d, c: %d, r: %d", columns, c, r)
			}
		}
	}

	assert.Equal(t, 7, rowShift(7, smallColumns))
	assert.Equal(t, 11, rowShift(7, largeColumns))
	assert.Equal(t, 6, rowShift(6, largeColumns))
}

func TestPermuteTable(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, columns := range []int{smallColumns, largeColumns} {
		_, rounds := mode(columns * 32)
		for _, k := range []constant{xorConstant, addConstant} {
			for i := 0; i < 64; i++ {
				exp := state{columns: columns}
				rnd.Read(exp.b[:exp.size()])
				act := exp

				permuteGeneric(&exp, rounds, k)
				permuteTable(&act, rounds, k)
				assert.Equal(t, exp, act)
			}
		}
	}
}

func TestPermute_OneRound(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, columns := range []int{smallColumns, largeColumns} {
		exp := state{columns: columns}
		rnd.Read(exp.b[:exp.size()])
		act := exp

		addRoundConstant(&exp, 0, addConstant)
		subBytes(&exp)
		shiftBytes(&exp)
		mixColumns(&exp)

		permuteTable(&act, 1, addConstant)
		assert.Equal(t, exp, act)
	}
}

func TestState_Reset(t *testing.T) {
	s := state{columns: largeColumns}
	s.b[5] = 1
	s.reset()
	assert.Equal(t, byte(128), s.b[0])
	assert.Equal(t, byte(0), s.b[5])
	assert.Equal(t, largeStateSize, len(s.bytes()))

	s.columns = smallColumns
	s.reset()
	assert.Equal(t, byte(64), s.b[0])
	assert.Equal(t, smallStateSize, len(s.bytes()))
}
