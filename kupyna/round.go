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

// constant selects the round-constant injection,
// which is the only step where P and Q differ.
type constant uint8

const (
	xorConstant constant = iota // P
	addConstant                 // Q
)

const qConstant = 0x00f0f0f0f0f0f0f3

// permute applies rounds rounds of P (xorConstant) or Q (addConstant) to s.
//
// Define permute as a variable so tests could run both implementations,
// see permuteGeneric & permuteTable.
var permute = permuteTable

// rowShift returns how many columns row r is rotated by in ShiftBytes.
func rowShift(r, columns int) int {
	if r == rows-1 && columns == largeColumns {
		return 11
	}
	return r
}

// qRoundConstant returns the word added to column c in round of Q.
func qRoundConstant(c, columns, round int) uint64 {
	return qConstant ^ uint64((columns-c-1)*0x10^round)<<56
}

// permuteGeneric runs the round transformations step by step on bytes.
func permuteGeneric(s *state, rounds int, k constant) {
	for i := 0; i < rounds; i++ {
		addRoundConstant(s, i, k)
		subBytes(s)
		shiftBytes(s)
		mixColumns(s)
	}
}

func addRoundConstant(s *state, round int, k constant) {
	if k == xorConstant {
		for c := 0; c < s.columns; c++ {
			s.b[c*rows] ^= byte(c*0x10 ^ round)
		}
		return
	}

	// Each column is a little-endian 64-bit word here,
	// whatever the byte order of the host is.
	for c := 0; c < s.columns; c++ {
		col := s.b[c*rows : c*rows+rows]
		w := binary.LittleEndian.Uint64(col)
		binary.LittleEndian.PutUint64(col, w+qRoundConstant(c, s.columns, round))
	}
}

func subBytes(s *state) {
	for c := 0; c < s.columns; c++ {
		for r := 0; r < rows; r++ {
			s.b[c*rows+r] = sboxes[r&3][s.b[c*rows+r]]
		}
	}
}

func shiftBytes(s *state) {
	var tmp [largeStateSize]byte
	for r := 0; r < rows; r++ {
		shift := rowShift(r, s.columns)
		for c := 0; c < s.columns; c++ {
			tmp[((c+shift)%s.columns)*rows+r] = s.b[c*rows+r]
		}
	}
	copy(s.b[:s.size()], tmp[:])
}

func mixColumns(s *state) {
	var col [rows]byte
	for c := 0; c < s.columns; c++ {
		copy(col[:], s.b[c*rows:])
		for r := 0; r < rows; r++ {
			var x byte
			for b := 0; b < rows; b++ {
				x ^= mulGF(col[b], mds[r][b])
			}
			s.b[c*rows+r] = x
		}
	}
}

// mixTable fuses SubBytes and MixColumns:
// mixTable[k][x] is the mixed column produced by byte x in row k
// (all other rows zero), row r of the result is its byte r.
var mixTable [rows][256]uint64

func init() {
	for k := 0; k < rows; k++ {
		for x := 0; x < 256; x++ {
			v := sboxes[k&3][x]
			var t uint64
			for r := 0; r < rows; r++ {
				t |= uint64(mulGF(v, mds[r][k])) << (8 * r)
			}
			mixTable[k][x] = t
		}
	}
}

// permuteTable works on 64-bit columns with mixTable.
// ShiftBytes is folded into the table lookups:
// row r of output column c comes from column c-shift(r).
func permuteTable(s *state, rounds int, k constant) {
	n := s.columns

	var shifts [rows]int
	for r := range shifts {
		shifts[r] = n - rowShift(r, n)
	}

	var w, t [largeColumns]uint64
	for c := 0; c < n; c++ {
		w[c] = binary.LittleEndian.Uint64(s.b[c*rows:])
	}

	for i := 0; i < rounds; i++ {
		if k == xorConstant {
			for c := 0; c < n; c++ {
				w[c] ^= uint64(c*0x10 ^ i)
			}
		} else {
			for c := 0; c < n; c++ {
				w[c] += qRoundConstant(c, n, i)
			}
		}

		for c := 0; c < n; c++ {
			var x uint64
			for r := 0; r < rows; r++ {
				x ^= mixTable[r][byte(w[(c+shifts[r])%n]>>(8*uint(r)))]
			}
			t[c] = x
		}
		w = t
	}

	for c := 0; c < n; c++ {
		binary.LittleEndian.PutUint64(s.b[c*rows:], w[c])
	}
}
