/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fastio

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrNotANumber = errors.New("token is not a number")
	ErrNotABool   = errors.New("token is not 0 or 1")
	ErrOutOfRange = errors.New("number out of range")
)

// Cin reads whitespace separated tokens. The first failure is kept in Err
// and every later read returns a zero value.
type Cin struct {
	reader *bufio.Reader
	err    error
}

func NewCin(r io.Reader, size int) *Cin {
	return &Cin{reader: bufio.NewReaderSize(r, size)}
}

func (c *Cin) Err() error {
	return c.err
}

func (c *Cin) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t' || b == '\v' || b == '\f'
}

// skip discards whitespace and returns the first byte after it.
func (c *Cin) skip() (byte, bool) {
	if c.err != nil {
		return 0, false
	}
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			c.fail(errors.Wrap(err, "read token"))
			return 0, false
		}
		if !isSpace(b) {
			return b, true
		}
	}
}

func (c *Cin) Byte() byte {
	b, _ := c.skip()
	return b
}

// Token returns the next run of non whitespace bytes.
func (c *Cin) Token() []byte {
	b, ok := c.skip()
	if !ok {
		return nil
	}
	token := []byte{b}
	for {
		b, err := c.reader.ReadByte()
		if err == io.EOF {
			return token
		}
		if err != nil {
			c.fail(errors.Wrap(err, "read token"))
			return token
		}
		if isSpace(b) {
			return token
		}
		token = append(token, b)
	}
}

func (c *Cin) digits() (uint64, bool) {
	var value uint64
	count := 0
	for {
		b, err := c.reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.fail(errors.Wrap(err, "read number"))
			return 0, false
		}
		if isSpace(b) {
			break
		}
		if b < '0' || b > '9' {
			c.fail(errors.Wrapf(ErrNotANumber, "unexpected byte %q", b))
			return 0, false
		}
		d := uint64(b - '0')
		if value > (math.MaxUint64-d)/10 {
			c.fail(errors.Wrap(ErrOutOfRange, "uint64 overflow"))
			return 0, false
		}
		value = value*10 + d
		count++
	}
	if count == 0 {
		c.fail(ErrNotANumber)
		return 0, false
	}
	return value, true
}

func (c *Cin) Uint() uint64 {
	b, ok := c.skip()
	if !ok {
		return 0
	}
	if b < '0' || b > '9' {
		c.fail(errors.Wrapf(ErrNotANumber, "unexpected byte %q", b))
		return 0
	}
	c.reader.UnreadByte()
	value, _ := c.digits()
	return value
}

func (c *Cin) Int() int64 {
	b, ok := c.skip()
	if !ok {
		return 0
	}
	negative := b == '-'
	if !negative {
		if b < '0' || b > '9' {
			c.fail(errors.Wrapf(ErrNotANumber, "unexpected byte %q", b))
			return 0
		}
		c.reader.UnreadByte()
	}
	value, ok := c.digits()
	if !ok {
		return 0
	}
	if negative {
		if value > 1<<63 {
			c.fail(errors.Wrapf(ErrOutOfRange, "-%d overflows int64", value))
			return 0
		}
		return -int64(value)
	}
	if value > math.MaxInt64 {
		c.fail(errors.Wrapf(ErrOutOfRange, "%d overflows int64", value))
		return 0
	}
	return int64(value)
}

func (c *Cin) Int32() int32 {
	v := c.Int()
	if v < math.MinInt32 || v > math.MaxInt32 {
		c.fail(errors.Wrapf(ErrOutOfRange, "%d overflows int32", v))
		return 0
	}
	return int32(v)
}

func (c *Cin) Bool() bool {
	switch c.Byte() {
	case '1':
		return true
	case '0':
		return false
	case 0:
		return false
	default:
		c.fail(ErrNotABool)
		return false
	}
}

// Cout buffers output and writes it through in chunks of at most size bytes.
type Cout struct {
	writer  io.Writer
	buffer  []byte
	scratch [20]byte
	err     error
}

func NewCout(w io.Writer, size int) *Cout {
	if size < len(Cout{}.scratch)+1 {
		size = len(Cout{}.scratch) + 1
	}
	return &Cout{writer: w, buffer: make([]byte, 0, size)}
}

func (c *Cout) reserve(n int) {
	if len(c.buffer)+n > cap(c.buffer) {
		c.Flush()
	}
}

func (c *Cout) Byte(b byte) *Cout {
	c.reserve(1)
	c.buffer = append(c.buffer, b)
	return c
}

func (c *Cout) String(s string) *Cout {
	for len(s) > 0 {
		if len(c.buffer) == cap(c.buffer) {
			c.Flush()
		}
		n := copy(c.buffer[len(c.buffer):cap(c.buffer)], s)
		c.buffer = c.buffer[:len(c.buffer)+n]
		s = s[n:]
	}
	return c
}

func (c *Cout) Uint(v uint64) *Cout {
	digits := strconv.AppendUint(c.scratch[:0], v, 10)
	c.reserve(len(digits))
	c.buffer = append(c.buffer, digits...)
	return c
}

func (c *Cout) Int(v int64) *Cout {
	digits := strconv.AppendInt(c.scratch[:0], v, 10)
	c.reserve(len(digits))
	c.buffer = append(c.buffer, digits...)
	return c
}

func (c *Cout) Space() *Cout {
	return c.Byte(' ')
}

func (c *Cout) Newline() *Cout {
	return c.Byte('\n')
}

// Flush writes the buffer out. A write error is sticky.
func (c *Cout) Flush() error {
	if c.err != nil {
		return c.err
	}
	if len(c.buffer) > 0 {
		if _, err := c.writer.Write(c.buffer); err != nil {
			c.err = errors.Wrap(err, "flush output")
		}
		c.buffer = c.buffer[:0]
	}
	return c.err
}
