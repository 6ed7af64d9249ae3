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

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cybrota/dolmetsch/dictionary"
	"github.com/cybrota/dolmetsch/translate"
	"github.com/mattn/go-shellwords"
)

// Process exit codes.
const (
	exitOK     = 0
	exitMisses = 1 // at least one word had no translation
	exitFatal  = 2 // usage, I/O or format error
)

// exitError carries a process exit code out of a command. A nil err means
// nothing needs to be reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func fatal(err error) error {
	return &exitError{code: exitFatal, err: err}
}

var errMissedWords = &exitError{code: exitMisses}

// reportError prints err to w and returns the exit code it stands for.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(w, "%sERROR:%s %v\n", Error, Reset, ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(w, "%sERROR:%s %v\n", Error, Reset, err)
	return exitFatal
}

func openDictionary(path string, cfg *Config, progress io.Writer) (*dictionary.Dictionary, error) {
	dict, err := dictionary.Open(path, cfg.dictionaryOptions(progress))
	if err != nil {
		return nil, fatal(err)
	}
	return dict, nil
}

// runTranslate loads the dictionary at dictPath and translates in to out.
func runTranslate(dictPath string, cfg *Config, in io.Reader, out, errOut io.Writer) error {
	dict, err := openDictionary(dictPath, cfg, errOut)
	if err != nil {
		return err
	}
	defer dict.Close()

	engine := translate.New(dict, cfg.translateOptions())
	stats, err := engine.Translate(in, out)
	if err != nil {
		return fatal(err)
	}

	if stats.Misses > 0 && cfg.Translate.FailOnMiss {
		return errMissedWords
	}
	return nil
}

// runLookup prints "word:translation" for every word, "word:<word>" when
// the word is unknown. query is split with shell quoting rules and appended
// to words.
func runLookup(dictPath string, words []string, query string, cfg *Config, out, errOut io.Writer) error {
	if query != "" {
		parsed, err := shellwords.Parse(query)
		if err != nil {
			return fatal(fmt.Errorf("failed to parse query %q: %w", query, err))
		}
		words = append(words, parsed...)
	}
	if len(words) == 0 {
		return fatal(errors.New("no words to look up"))
	}

	dict, err := openDictionary(dictPath, cfg, errOut)
	if err != nil {
		return err
	}
	defer dict.Close()

	engine := translate.New(dict, cfg.translateOptions())
	missed := false
	for _, word := range words {
		if translation, ok := engine.Resolve(word); ok {
			fmt.Fprintf(out, "%s:%s\n", word, translation)
		} else {
			missed = true
			fmt.Fprintf(out, "%s:<%s>\n", word, word)
		}
	}

	if missed && cfg.Translate.FailOnMiss {
		return errMissedWords
	}
	return nil
}

// runCheck validates a dictionary and prints its statistics.
func runCheck(dictPath string, cfg *Config, out, errOut io.Writer) error {
	dict, err := openDictionary(dictPath, cfg, errOut)
	if err != nil {
		return err
	}
	defer dict.Close()

	stats := dict.Stats()
	fmt.Fprintf(out, "%s✅ %s is well-formed%s\n", Green, dictPath, Reset)
	fmt.Fprintf(out, "  entries:     %d\n", stats.Entries)
	fmt.Fprintf(out, "  distinct:    %d\n", dict.Len())
	fmt.Fprintf(out, "  duplicates:  %d\n", stats.Duplicates)
	fmt.Fprintf(out, "  bytes:       %d\n", stats.Bytes)
	fmt.Fprintf(out, "  tree height: %d\n", dict.Height())
	return nil
}
