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

// Package dictionary reads word:translation files into an ordered symbol
// table.
package dictionary

import (
	"fmt"
	"io"
	"os"

	"github.com/cybrota/dolmetsch/symtab"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

const (
	DefaultBloomFilterSize   = 1 << 20 // bits
	DefaultBloomFilterHashes = 5
)

// Options controls how a dictionary file is opened.
type Options struct {
	BloomFilterSize   uint
	BloomFilterHashes uint

	// ShowProgress draws a byte progress bar on ProgressOutput while loading.
	ShowProgress   bool
	ProgressOutput io.Writer
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		BloomFilterSize:   DefaultBloomFilterSize,
		BloomFilterHashes: DefaultBloomFilterHashes,
		ProgressOutput:    os.Stderr,
	}
}

// Dictionary is a loaded word list: the ordered tree plus a bloom filter
// over its keys that answers most misses without walking the tree.
// It is filled once and read-only afterwards.
type Dictionary struct {
	tree   *symtab.Tree
	filter *bloom.BloomFilter
	stats  Stats
}

// New returns an empty dictionary.
func New(opts Options) *Dictionary {
	size, hashes := opts.BloomFilterSize, opts.BloomFilterHashes
	if size == 0 {
		size = DefaultBloomFilterSize
	}
	if hashes == 0 {
		hashes = DefaultBloomFilterHashes
	}
	return &Dictionary{
		tree:   symtab.New(),
		filter: bloom.New(size, hashes),
	}
}

// Open reads the dictionary file at path.
func Open(path string, opts Options) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		size := int64(-1)
		if stat, err := file.Stat(); err == nil {
			size = stat.Size()
		}
		out := opts.ProgressOutput
		if out == nil {
			out = os.Stderr
		}
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetDescription("📖 Loading dictionary..."),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(out, "\n")
			}),
		)
		r = io.TeeReader(file, bar)
	}

	d := New(opts)
	if err := d.Load(r); err != nil {
		return nil, err
	}
	if bar != nil {
		bar.Finish()
	}
	return d, nil
}

// Load parses r into d. On failure every entry loaded so far is released.
func (d *Dictionary) Load(r io.Reader) error {
	stats, err := Load(r, d)
	d.stats.Entries += stats.Entries
	d.stats.Duplicates += stats.Duplicates
	d.stats.Bytes += stats.Bytes
	if err != nil {
		d.Close()
		return err
	}
	return nil
}

// Insert adds or replaces one entry.
func (d *Dictionary) Insert(key, value string) bool {
	d.filter.AddString(key)
	return d.tree.Insert(key, value)
}

// Lookup returns the translation of key.
func (d *Dictionary) Lookup(key string) (string, bool) {
	if !d.filter.TestString(key) {
		return "", false
	}
	return d.tree.Lookup(key)
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return d.tree.Len()
}

// Height returns the height of the underlying tree.
func (d *Dictionary) Height() int {
	return d.tree.Height()
}

// SearchPrefix lists the entries whose word starts with prefix.
func (d *Dictionary) SearchPrefix(prefix string) []symtab.Entry {
	return d.tree.SearchPrefix(prefix)
}

// Stats returns load statistics.
func (d *Dictionary) Stats() Stats {
	return d.stats
}

// Close releases the entries. The dictionary is empty afterwards.
func (d *Dictionary) Close() {
	d.tree.Reset()
	d.filter.ClearAll()
}
