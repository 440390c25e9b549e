/*
 * Copyright (c) 2020. Temple3x (temple3x@gmail.com)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"crypto/subtle"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/zaibyte/kupyna/errno"
	"github.com/zaibyte/kupyna/kupyna"
	"github.com/zaibyte/kupyna/metrics"
	"github.com/zaibyte/kupyna/uid"
	"github.com/zaibyte/kupyna/xerrors"
	"github.com/zaibyte/kupyna/xlog"
)

// stdinName is the name of stdin in arguments & sum files.
const stdinName = "-"

var stdin io.Reader = os.Stdin

func sumCmd(c *cli.Context) error {

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if err = cfg.applyFlags(c); err != nil {
		return err
	}
	if err = cfg.adjust(); err != nil {
		return err
	}

	runID := uid.MakeRunID()
	el, sl, err := cfg.Log.MakeLogger(runID)
	if err != nil {
		return err
	}
	defer el.Close()
	if sl != nil {
		defer sl.Close()
	}

	stop := metrics.Push(&cfg.Metrics, runID)
	defer stop()

	s, err := newSummer(cfg.Bits, c.String("mac-key"), int(cfg.Chunk), sl)
	if err != nil {
		return err
	}
	xlog.Debug("kupynasum start", zap.Int("bits", s.bits), zap.String("op", s.op()),
		xlog.Size("chunk", int64(cfg.Chunk)))

	if c.IsSet("check") {
		return s.check(c.String("check"), c.App.Writer)
	}
	return s.sumFiles(c.Args().Slice(), c.App.Writer)
}

// summer makes codes (or MACs) of inputs.
type summer struct {
	bits int
	key  []byte // MAC key, nil for hash.
	buf  []byte
	sl   *xlog.SumLogger
}

// newSummer returns a summer making bits long codes,
// or MACs when keyHex isn't empty (the MAC length is the key length then).
func newSummer(bits int, keyHex string, chunk int, sl *xlog.SumLogger) (*summer, error) {
	s := &summer{bits: bits, buf: make([]byte, chunk), sl: sl}

	if keyHex == "" {
		if _, err := kupyna.NewDigest(bits); err != nil {
			return nil, err
		}
		return s, nil
	}

	key, err := decodeHex(keyHex)
	if err != nil {
		return nil, err
	}
	if _, err = kupyna.NewMAC(key); err != nil {
		return nil, err
	}
	s.key = key
	s.bits = len(key) * 8
	return s, nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, xerrors.WithMessage(errno.ErrInvalidHex, "empty")
	}
	return kupyna.ParseHex(s)
}

func (s *summer) op() string {
	if s.key != nil {
		return metrics.OpMAC
	}
	return metrics.OpHash
}

func (s *summer) newHash(bits int) (hash.Hash, error) {
	if s.key != nil {
		if bits != s.bits {
			return nil, xerrors.WithMessagef(errno.ErrInvalidMACSize,
				"%d bits MAC with %d bits key", bits, s.bits)
		}
		return kupyna.NewMAC(s.key)
	}
	return kupyna.NewDigest(bits)
}

// sum returns the bits long code of r.
func (s *summer) sum(name string, r io.Reader, bits int) ([]byte, error) {

	h, err := s.newHash(bits)
	if err != nil {
		return nil, err
	}

	start, ts := time.Now(), metrics.Now()
	n, err := io.CopyBuffer(h, r, s.buf)
	if err != nil {
		return nil, xerrors.WithMessage(err, "read "+name)
	}
	code := h.Sum(nil)

	metrics.Observe(s.op(), bits, n, ts)
	if s.sl != nil {
		s.sl.Write(name, s.op(), bits, n, start, kupyna.Hex(code))
	}
	xlog.Debug("sum done", zap.String("name", name), xlog.Size("size", n))
	return code, nil
}

func (s *summer) sumFile(name string, bits int) ([]byte, error) {
	if name == stdinName {
		return s.sum(name, stdin, bits)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.sum(name, f, bits)
}

// sumFiles writes "<hex>  <name>" of every file into w,
// stdin is read if there is no file.
// It goes on after failures and returns the last error.
func (s *summer) sumFiles(names []string, w io.Writer) (err error) {

	if len(names) == 0 {
		names = []string{stdinName}
	}

	for _, name := range names {
		code, err2 := s.sumFile(name, s.bits)
		if err2 != nil {
			xlog.Error("failed to sum", zap.String("name", name), zap.Error(err2))
			err = err2
			continue
		}
		if _, err2 = fmt.Fprintf(w, "%s  %s\n", kupyna.Hex(code), name); err2 != nil {
			return err2
		}
	}
	return
}

// check reads "<hex>  <name>" lines from sumPath, and checks the code of every name.
// Code length of each line decides the bits.
// It writes "<name>: OK" or "<name>: FAILED" for each line into w.
func (s *summer) check(sumPath string, w io.Writer) error {

	var r io.Reader
	if sumPath == stdinName {
		r = stdin
	} else {
		f, err := os.Open(sumPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var mismatched, failed, lineNo int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		exp, name, err := parseSumLine(line)
		if err != nil {
			xlog.Warn("improperly formatted line", zap.Int("line", lineNo), zap.Error(err))
			failed++
			continue
		}

		act, err := s.sumFile(name, len(exp)*8)
		if err != nil {
			xlog.Error("failed to sum", zap.String("name", name), zap.Error(err))
			fmt.Fprintf(w, "%s: FAILED open or read\n", name)
			failed++
			continue
		}

		if subtle.ConstantTimeCompare(exp, act) == 1 {
			fmt.Fprintf(w, "%s: OK\n", name)
		} else {
			fmt.Fprintf(w, "%s: FAILED\n", name)
			mismatched++
		}
	}
	if err := scanner.Err(); err != nil {
		return xerrors.WithMessage(err, "read "+sumPath)
	}

	if mismatched != 0 {
		return xerrors.WithMessagef(errno.ErrChecksumMismatch, "%d computed checksums did NOT match", mismatched)
	}
	if failed != 0 {
		return xerrors.WithMessagef(errno.ErrChecksumMismatch, "%d lines are improperly formatted or unreadable", failed)
	}
	return nil
}

// parseSumLine parses "<hex>  <name>" (or "<hex> *<name>").
func parseSumLine(line string) (code []byte, name string, err error) {
	i := strings.IndexByte(line, ' ')
	if i < 0 || i+2 > len(line) {
		return nil, "", xerrors.WithMessage(errno.ErrInvalidHex, "no name")
	}
	if i/2 > kupyna.MaxBits/8 {
		return nil, "", xerrors.WithMessagef(errno.ErrInvalidHex, "code too long: %d", i)
	}

	code, err = decodeHex(line[:i])
	if err != nil {
		return nil, "", err
	}

	name = line[i+1:]
	if name[0] == ' ' || name[0] == '*' {
		name = name[1:]
	}
	if name == "" {
		return nil, "", xerrors.WithMessage(errno.ErrInvalidHex, "no name")
	}
	return code, name, nil
}
