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
	"fmt"
	"math/rand"
	"testing"

	"github.com/mengzhuo/nabhash"
	"github.com/zeebo/xxh3"
)

func BenchmarkContext_Hash(b *testing.B) {

	for _, bits := range []int{256, 512} {
		for i := 64; i <= 65536; i <<= 2 {
			b.Run(fmt.Sprintf("%d/%d", bits, i), func(b *testing.B) {
				buf := make([]byte, i)
				rand.Read(buf)
				c, _ := New(bits)
				code := make([]byte, c.Size())
				b.SetBytes(int64(i))
				b.ResetTimer()
				for j := 0; j < b.N; j++ {
					c.Hash(code, buf, uint64(i)*8)
				}
			})
		}
	}
}

func BenchmarkPermute(b *testing.B) {

	for _, columns := range []int{smallColumns, largeColumns} {
		_, rounds := mode(columns * 32)
		b.Run(fmt.Sprintf("generic/%d", columns), func(b *testing.B) {
			s := state{columns: columns}
			b.SetBytes(int64(s.size()))
			for j := 0; j < b.N; j++ {
				permuteGeneric(&s, rounds, xorConstant)
			}
		})
		b.Run(fmt.Sprintf("table/%d", columns), func(b *testing.B) {
			s := state{columns: columns}
			b.SetBytes(int64(s.size()))
			for j := 0; j < b.N; j++ {
				permuteTable(&s, rounds, xorConstant)
			}
		})
	}
}

func BenchmarkSum256(b *testing.B) {

	p := make([]byte, 1024*1024)
	rand.Read(p)

	b.SetBytes(1024 * 1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Sum256(p)
	}
}

func BenchmarkDigest_Sum(b *testing.B) {

	p := make([]byte, 1024*1024)
	rand.Read(p)
	d, _ := NewDigest(256)
	code := make([]byte, 0, Size256)

	b.ResetTimer()
	b.SetBytes(1024 * 1024)

	for i := 0; i < b.N; i++ {
		d.Write(p)
		_ = d.Sum(code[:0])
		d.Reset()
	}
}

func BenchmarkXXH3(b *testing.B) {

	p := make([]byte, 1024*1024)
	rand.Read(p)

	b.SetBytes(1024 * 1024)

	for i := 0; i < b.N; i++ {
		_ = xxh3.Hash(p)
	}
}

func BenchmarkNAB(b *testing.B) {

	p := make([]byte, 1024*1024)
	s := make([]byte, 16)
	rand.Read(p)

	mh := nabhash.New()

	b.SetBytes(1024 * 1024)

	for i := 0; i < b.N; i++ {
		mh.Write(p)
		_ = mh.Sum(s[:0])
		mh.Reset()
	}
}
