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
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/dolmetsch/symtab"
)

// maxBrowseResults caps the list so a one-letter prefix stays responsive.
const maxBrowseResults = 500

// entrySource is the part of a dictionary the browser reads.
type entrySource interface {
	SearchPrefix(prefix string) []symtab.Entry
	Len() int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Status        lipgloss.Style
}

// NewStyles creates styles from the current color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		Status: lipgloss.NewStyle().
			Foreground(scheme.Success),
	}
}

// entryItem represents an item in the entries list
type entryItem struct {
	entry symtab.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Key }
func (i entryItem) Title() string       { return i.entry.Key }
func (i entryItem) Description() string { return "→ " + i.entry.Value }

// BrowseModel is the Bubble Tea state of the dictionary browser.
type BrowseModel struct {
	ready bool

	textInput    textinput.Model
	entriesList  list.Model
	detailView   viewport.Model
	focusOnInput bool

	dict      entrySource
	entries   []symtab.Entry
	lastQuery string
	copied    string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// NewBrowseModel creates the initial model
func NewBrowseModel(dict entrySource) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Type a word prefix..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	entriesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	entriesList.SetShowTitle(false)
	entriesList.SetShowHelp(false)
	entriesList.SetFilteringEnabled(false)

	detailView := viewport.New(0, 0)
	detailView.SetContent("Select a word to see its entry...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(48),
	)

	m := BrowseModel{
		textInput:       ti,
		entriesList:     entriesList,
		detailView:      detailView,
		focusOnInput:    true,
		dict:            dict,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.updateEntries("")
	return m
}

// Init is called when the program starts
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnInput = !m.focusOnInput
			if m.focusOnInput {
				m.textInput.Focus()
			} else {
				m.textInput.Blur()
			}
			return m, nil
		case "enter":
			if entry, ok := m.selectedEntry(); ok {
				m.copied = entry.Value
				return m, func() tea.Msg {
					if err := copyToClipboard(entry.Value); err != nil {
						fmt.Fprintf(os.Stderr, "Failed to copy translation: %v\n", err)
					}
					return tea.Quit()
				}
			}
			return m, nil
		case "up", "down":
			m.entriesList, cmd = m.entriesList.Update(msg)
			m.updateDetail()
			return m, cmd
		}

		if m.focusOnInput {
			m.textInput, cmd = m.textInput.Update(msg)
			if query := m.textInput.Value(); query != m.lastQuery {
				m.updateEntries(query)
			}
			return m, cmd
		}
		m.entriesList, cmd = m.entriesList.Update(msg)
		m.updateDetail()
		return m, cmd
	}

	return m, nil
}

// View renders the browser
func (m BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 4

	inputStyle, listStyle := m.styles.BorderBlurred, m.styles.BorderFocused
	if m.focusOnInput {
		inputStyle, listStyle = m.styles.BorderFocused, m.styles.BorderBlurred
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🔍 Prefix"),
			m.textInput.View(),
		))

	listBox := listStyle.
		Width(leftWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf("📖 Entries (%d of %d)", len(m.entries), m.dict.Len())),
			m.entriesList.View(),
		))

	detailBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("📝 Entry"),
			m.detailView.View(),
		))

	left := lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, detailBox)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelp())
}

func (m BrowseModel) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"tab", "switch focus"},
		{"↑/↓", "select"},
		{"enter", "copy translation"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	return strings.Join(parts, "  •  ")
}

func (m *BrowseModel) updateLayout() {
	leftWidth := (m.width / 2) - 1
	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}
	m.textInput.Width = leftWidth - 4
	m.entriesList.SetSize(leftWidth, listHeight)
	m.detailView.Width = m.width - leftWidth - 6
	m.detailView.Height = m.height - 6
	m.updateDetail()
}

func (m *BrowseModel) updateEntries(query string) {
	m.lastQuery = query
	matches := m.dict.SearchPrefix(strings.ToLower(query))
	if len(matches) > maxBrowseResults {
		matches = matches[:maxBrowseResults]
	}
	m.entries = matches

	items := make([]list.Item, len(matches))
	for i, e := range matches {
		items[i] = entryItem{entry: e}
	}
	m.entriesList.SetItems(items)
	m.entriesList.Select(0)
	m.updateDetail()
}

func (m BrowseModel) selectedEntry() (symtab.Entry, bool) {
	idx := m.entriesList.Index()
	if idx < 0 || idx >= len(m.entries) {
		return symtab.Entry{}, false
	}
	return m.entries[idx], true
}

func (m *BrowseModel) updateDetail() {
	entry, ok := m.selectedEntry()
	if !ok {
		m.detailView.SetContent("No entries match this prefix.")
		return
	}

	md := fmt.Sprintf("# %s\n\n**%s**\n\n`%s:%s`\n", entry.Key, entry.Value, entry.Key, entry.Value)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			m.detailView.SetContent(rendered)
			return
		}
	}
	m.detailView.SetContent(md)
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBrowseApp starts the Bubble Tea application
func runBrowseApp(dict entrySource) error {
	InitializeColors()

	program := tea.NewProgram(
		NewBrowseModel(dict),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
