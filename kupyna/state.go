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

const (
	rows = 8

	smallColumns = 8
	largeColumns = 16

	smallRounds = 10
	largeRounds = 14

	smallStateSize = rows * smallColumns
	largeStateSize = rows * largeColumns
)

// state is the hash internal state: a byte matrix with 8 rows and
// 8 or 16 columns, stored column-major.
// Column c occupies b[c*rows:(c+1)*rows], so b[c*rows+r] is row r of it.
// Only the first columns*rows bytes are in use.
type state struct {
	b       [largeStateSize]byte
	columns int
}

func (s *state) size() int {
	return s.columns * rows
}

func (s *state) bytes() []byte {
	return s.b[:s.columns*rows]
}

// reset zeroes s and writes the IV (first byte is the state size in bytes).
func (s *state) reset() {
	s.b = [largeStateSize]byte{}
	s.b[0] = byte(s.size())
}
