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

// Package translate streams text through a dictionary word by word.
//
// Runs of ASCII letters are tokens. Each token is replaced by its
// translation; every other byte is copied through unchanged. Unknown tokens
// come out as <token> and are counted as misses.
package translate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrFormat is matched by every illegal input byte.
var ErrFormat = errors.New("illegal character in input text")

// FormatError reports an input byte outside printable ASCII and newline.
type FormatError struct {
	Line   int
	Column int
	Byte   byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("input line %d, column %d: illegal byte 0x%02x", e.Line, e.Column, e.Byte)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// Stats summarises one run.
type Stats struct {
	Tokens     int
	Translated int
	Misses     int
	Bytes      int64
}

// Options tunes an Engine.
type Options struct {
	TokenCacheExpiration time.Duration
}

// Engine translates text against a dictionary that no longer changes.
type Engine struct {
	resolver *Resolver
}

// New creates an engine over dict.
func New(dict Lookuper, opts Options) *Engine {
	return &Engine{
		resolver: NewResolver(dict, NewTokenCache(opts.TokenCacheExpiration)),
	}
}

// Translate copies r to w, replacing every token. Output is flushed at each
// newline and before returning, including when an illegal byte stops the run.
func (e *Engine) Translate(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var (
		tok      []byte
		hasUpper bool
		line     = 1
		col      = 0
	)

	closeToken := func() {
		if len(tok) == 0 {
			return
		}
		e.emit(bw, Token{Text: string(tok), HasUpper: hasUpper}, &stats)
		tok = tok[:0]
		hasUpper = false
	}

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			closeToken()
			return stats, flush(bw)
		}
		if err != nil {
			flush(bw)
			return stats, fmt.Errorf("failed to read input: %w", err)
		}
		stats.Bytes++
		col++

		if !isLegal(c) {
			flush(bw)
			return stats, &FormatError{Line: line, Column: col, Byte: c}
		}

		if isLetter(c) {
			tok = append(tok, c)
			if isUpper(c) {
				hasUpper = true
			}
			continue
		}

		closeToken()
		bw.WriteByte(c)
		if c == '\n' {
			line++
			col = 0
			if err := flush(bw); err != nil {
				return stats, err
			}
		}
	}
}

// TranslateString is Translate over an in-memory string.
func (e *Engine) TranslateString(s string) (string, Stats, error) {
	var out strings.Builder
	stats, err := e.Translate(strings.NewReader(s), &out)
	return out.String(), stats, err
}

// Resolve translates a single token, reporting whether it was found.
func (e *Engine) Resolve(word string) (string, bool) {
	return e.resolver.Resolve(newToken(word))
}

func (e *Engine) emit(bw *bufio.Writer, tok Token, stats *Stats) {
	stats.Tokens++
	if translation, ok := e.resolver.Resolve(tok); ok {
		stats.Translated++
		bw.WriteString(translation)
		return
	}
	stats.Misses++
	bw.WriteByte('<')
	bw.WriteString(tok.Text)
	bw.WriteByte('>')
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newToken(word string) Token {
	tok := Token{Text: word}
	for i := 0; i < len(word); i++ {
		if isUpper(word[i]) {
			tok.HasUpper = true
			break
		}
	}
	return tok
}

func isLegal(c byte) bool {
	return (c >= 0x20 && c <= 0x7e) || c == '\n'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || isUpper(c)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
