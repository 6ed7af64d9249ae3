// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrFormat is matched by every dictionary grammar violation.
var ErrFormat = errors.New("malformed dictionary")

// Inserter receives the parsed entries. It reports false when key was
// already present and its value got replaced.
type Inserter interface {
	Insert(key, value string) bool
}

type state int

const (
	stateWord state = iota
	stateTranslation
)

func (s state) String() string {
	if s == stateTranslation {
		return "translation"
	}
	return "word"
}

// FormatError describes the first byte that broke the dictionary grammar.
type FormatError struct {
	Line   int
	Column int
	Byte   int // -1 at end of file
	State  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dictionary line %d, column %d: %s", e.Line, e.Column, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// Stats summarises one load.
type Stats struct {
	Entries    int   // entry lines parsed
	Duplicates int   // entries that replaced an earlier one
	Bytes      int64 // bytes consumed
}

// Load parses "word:translation\n" lines from r and inserts every pair into
// dst. Both sides must be one or more lowercase ASCII letters. Parsing stops
// at the first violation, which is returned as a *FormatError.
func Load(r io.Reader, dst Inserter) (Stats, error) {
	var stats Stats

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var (
		buf  bytes.Buffer
		key  string
		st   = stateWord
		line = 1
		col  = 0
	)

	fail := func(c int, reason string) error {
		return &FormatError{Line: line, Column: col, Byte: c, State: st.String(), Reason: reason}
	}

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			if st == stateWord && buf.Len() == 0 {
				return stats, nil
			}
			col++
			return stats, fail(-1, fmt.Sprintf("unexpected end of file in %s", st))
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read dictionary: %w", err)
		}
		stats.Bytes++
		col++

		switch st {
		case stateWord:
			switch {
			case isLower(c):
				buf.WriteByte(c)
			case c == ':' && buf.Len() > 0:
				key = buf.String()
				buf.Reset()
				st = stateTranslation
			case c == ':':
				return stats, fail(int(c), "empty word before ':'")
			default:
				return stats, fail(int(c), fmt.Sprintf("unexpected byte %q in word", c))
			}
		case stateTranslation:
			switch {
			case isLower(c):
				buf.WriteByte(c)
			case c == '\n' && buf.Len() > 0:
				if !dst.Insert(key, buf.String()) {
					stats.Duplicates++
				}
				stats.Entries++
				buf.Reset()
				st = stateWord
				line++
				col = 0
			case c == '\n':
				return stats, fail(int(c), "empty translation")
			default:
				return stats, fail(int(c), fmt.Sprintf("unexpected byte %q in translation", c))
			}
		}
	}
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
