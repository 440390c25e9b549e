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

import "github.com/templexxx/xorsimd"

// compress folds every full block of p into s:
//	s = s ^ P(s ^ m) ^ Q(m)
// len(p) must be a multiple of s.size().
func compress(s *state, rounds int, p []byte) {

	n := s.size()
	a := state{columns: s.columns}
	b := state{columns: s.columns}

	for len(p) >= n {
		xorsimd.Bytes(a.b[:n], s.b[:n], p[:n])
		copy(b.b[:n], p[:n])

		permute(&a, rounds, xorConstant)
		permute(&b, rounds, addConstant)

		xorsimd.Bytes(s.b[:n], s.b[:n], a.b[:n])
		xorsimd.Bytes(s.b[:n], s.b[:n], b.b[:n])
		p = p[n:]
	}
}

// final runs the output transformation s = s ^ P(s),
// and copies the trailing len(dst) bytes of s into dst.
func final(s *state, rounds int, dst []byte) {

	n := s.size()
	t := *s
	permute(&t, rounds, xorConstant)
	xorsimd.Bytes(s.b[:n], s.b[:n], t.b[:n])

	copy(dst, s.bytes()[n-len(dst):])
}
