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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaibyte/kupyna/errno"
)

const fox = "The quick brown fox jumps over the lazy dog"

var macVectors = []struct {
	key     []byte
	msg     []byte
	msgBits uint64
	exp     string
}{
	{seq(32), nil, 0, "5D89C0F0412EC80C31AC8DCDFD86322366148D927D4312D8597E82ED7BB6CCE6"},
	{seq(32), seq(64), 512, "E300069CDD1F11A64DA2BF484E5B54B2EB6DB4064C1FC9F83FB5F06D7E5E0340"},
	{seq(32), seq(200), 1600, "C5BAEA78923C96328B8FE9BDF8D553BFEA56325A0D460394BF70E8DD0EFB67D3"},
	{seq(32), []byte(fox), uint64(len(fox)) * 8, "489770C4AEE5BE14570B5EBFE3E212C2857F23138640D8C2ACFDC0FF5F543710"},
	{seq(32), []byte{0xaa}, 7, "C3ECADACBA3F6C48D9E9E91A3F63A2743F6DF607C907BCFD86CB8D47E7E2516D"},
	{seq(48), seq(64), 512, "AE12D369EC013F0F19751477FE3EE7C4DE72DFCFDB8B081D31BBEBBB21C68AE02EF3DBBE3ADC959CBDFAAC4D2E1656A4"},
	{seq(64), seq(64), 512, "6F54A48F013C6EA0F2AA3BBC78F7D00E1BC80D7413530DC5210A42D55C61BB2A0E2601DD42145FCDB181E0CED322B0AB51AB2EE406322373C7EA6AAEF73D35F4"},
	{seq(64), seq(255), 2040, "2A477FCF7B91C4555EBE051613B4B9F2FDF3C577ED3DE229BF58010095FAF9D2F094AE1D581A11B837D035C1CD62B162533F6C46E8F115003A8786B2E66C8669"},
}

func TestContext_Mac(t *testing.T) {
	for _, v := range macVectors {
		c, err := New(len(v.key) * 8)
		assert.Nil(t, err)

		tag := make([]byte, c.Size())
		err = c.Mac(tag, v.key, v.msg, v.msgBits)
		assert.Nil(t, err)
		assert.Equal(t, v.exp, strings.ToUpper(Hex(tag)), "key: %d, msgBits: %d", len(v.key), v.msgBits)
	}
}

func TestMAC(t *testing.T) {
	for _, v := range macVectors {
		if v.msgBits%8 != 0 {
			continue
		}
		tag, err := MAC(v.key, v.msg)
		assert.Nil(t, err)
		assert.Equal(t, v.exp, strings.ToUpper(Hex(tag)))
	}
}

func TestContext_Mac_InvalidSize(t *testing.T) {
	for _, bits := range []int{256, 384, 512} {
		c, err := New(bits)
		assert.Nil(t, err)

		for _, keyLen := range []int{0, 16, 31, 33, 47, 63, 65, 128} {
			tag := make([]byte, c.Size())
			err = c.Mac(tag, make([]byte, keyLen), []byte(fox), 8)
			assert.True(t, errors.Is(err, errno.ErrInvalidMACSize), "key: %d", keyLen)
			assert.True(t, errno.IsConfigError(err))
			assert.Equal(t, make([]byte, c.Size()), tag)
		}
	}

	// Key size must match the context.
	c, err := New(512)
	assert.Nil(t, err)
	err = c.Mac(make([]byte, 64), seq(32), nil, 0)
	assert.True(t, errors.Is(err, errno.ErrInvalidMACSize))

	_, err = MAC(seq(20), nil)
	assert.True(t, errors.Is(err, errno.ErrInvalidMACSize))
}

func TestContext_Mac_Panic(t *testing.T) {
	c, err := New(256)
	assert.Nil(t, err)
	assert.Panics(t, func() {
		_ = c.Mac(make([]byte, 32), seq(32), make([]byte, 1), 9)
	})
}

func TestContext_Mac_KeySensitive(t *testing.T) {
	c, err := New(256)
	assert.Nil(t, err)

	key := seq(32)
	exp := make([]byte, 32)
	assert.Nil(t, c.Mac(exp, key, []byte(fox), uint64(len(fox))*8))

	for i := range key {
		k := append([]byte(nil), key...)
		k[i] ^= 1
		act := make([]byte, 32)
		assert.Nil(t, c.Mac(act, k, []byte(fox), uint64(len(fox))*8))
		assert.NotEqual(t, exp, act)
	}
}

func TestMacInput(t *testing.T) {
	key := seq(32)
	msg := seq(150)

	input := macInput(key, msg, 1200, 64)
	// key: one padded block; msg: two full blocks, then 22 bytes padded to one block; ^key.
	assert.Equal(t, 64+128+64+32, len(input))

	assert.Equal(t, key, input[:32])
	assert.Equal(t, byte(0x80), input[32])
	assert.Equal(t, msg[:128], input[64:192])
	assert.Equal(t, msg[128:], input[192:214])
	assert.Equal(t, byte(0x80), input[214])
	for i, k := range key {
		assert.Equal(t, ^k, input[256+i])
	}
}
