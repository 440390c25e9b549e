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

// reductionPoly is x^8 + x^4 + x^3 + x^2 + 1.
const reductionPoly = 0x11d

// mulGF multiplies x and y in GF(2^8) modulo reductionPoly.
func mulGF(x, y byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		if y&1 == 1 {
			r ^= x
		}
		hbit := x & 0x80
		x <<= 1
		if hbit == 0x80 {
			x ^= reductionPoly & 0xff
		}
		y >>= 1
	}
	return r
}
