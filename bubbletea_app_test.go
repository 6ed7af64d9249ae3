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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/dolmetsch/dictionary"
)

func newBrowseDictionary(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d := dictionary.New(dictionary.DefaultOptions())
	if err := d.Load(strings.NewReader("haus:house\nhase:hare\nhund:dog\nkatze:cat\n")); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return d
}

func typeText(m BrowseModel, text string) BrowseModel {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(BrowseModel)
	}
	return m
}

func TestBrowseModelFiltersByPrefix(t *testing.T) {
	m := NewBrowseModel(newBrowseDictionary(t))
	if len(m.entries) != 4 {
		t.Fatalf("initial entries = %d; want 4", len(m.entries))
	}

	m = typeText(m, "Ha")
	if m.lastQuery != "Ha" {
		t.Fatalf("lastQuery = %q; want Ha", m.lastQuery)
	}
	if len(m.entries) != 2 || m.entries[0].Key != "hase" || m.entries[1].Key != "haus" {
		t.Errorf("entries = %v; want hase, haus", m.entries)
	}

	m = typeText(m, "x")
	if len(m.entries) != 0 {
		t.Errorf("entries = %v; want none", m.entries)
	}
	if _, ok := m.selectedEntry(); ok {
		t.Error("selectedEntry reported an entry for an empty list")
	}
}

func TestBrowseModelView(t *testing.T) {
	m := NewBrowseModel(newBrowseDictionary(t))
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(BrowseModel)
	view := m.View()
	if !strings.Contains(view, "Entries (4 of 4)") {
		t.Errorf("view does not show the entry count:\n%s", view)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	if got := next.(BrowseModel).View(); !strings.Contains(got, "too small") {
		t.Errorf("small terminal view = %q", got)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := NewBrowseModel(newBrowseDictionary(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
}

func TestBrowseModelTabTogglesFocus(t *testing.T) {
	m := NewBrowseModel(newBrowseDictionary(t))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BrowseModel)
	if m.focusOnInput {
		t.Error("tab did not move focus to the list")
	}
	// typing while the list has focus leaves the query alone
	m = typeText(m, "k")
	if m.lastQuery != "" {
		t.Errorf("lastQuery = %q; want empty", m.lastQuery)
	}
}
