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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDictionary = "hund:dog\nkatze:cat\nder:the\nist:is\nmuede:tired\n"

// runCLI executes the command line with an isolated configuration file.
func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	var out, errOut bytes.Buffer
	args = append([]string{"--config", configPath}, args...)
	code = execute(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestTranslateCommand(t *testing.T) {
	dict := writeFile(t, "dict.txt", sampleDictionary)

	tests := []struct {
		name   string
		input  string
		output string
		code   int
	}{
		{"sentence", "Der Hund ist muede.\n", "The Dog is tired.\n", exitOK},
		{"punctuation", "katze, katze!", "cat, cat!", exitOK},
		{"upper case", "HUND.", "Dog.", exitOK},
		{"unknown lowercase", "der vogel\n", "the <vogel>\n", exitMisses},
		{"unknown capitalised", "Der Vogel\n", "The <Vogel>\n", exitMisses},
		{"empty input", "", "", exitOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.input, dict)
			if code != tc.code {
				t.Errorf("exit code = %d; want %d (stderr %q)", code, tc.code, stderr)
			}
			if stdout != tc.output {
				t.Errorf("stdout = %q; want %q", stdout, tc.output)
			}
			if stderr != "" {
				t.Errorf("unexpected stderr %q", stderr)
			}
		})
	}
}

func TestTranslateEmptyDictionary(t *testing.T) {
	dict := writeFile(t, "empty.txt", "")
	code, stdout, _ := runCLI(t, "foo bar", dict)
	if stdout != "<foo> <bar>" {
		t.Errorf("stdout = %q; want %q", stdout, "<foo> <bar>")
	}
	if code != exitMisses {
		t.Errorf("exit code = %d; want %d", code, exitMisses)
	}
}

func TestFatalErrors(t *testing.T) {
	good := writeFile(t, "dict.txt", sampleDictionary)
	bad := writeFile(t, "bad.txt", "hund:dog\nHund:Dog\n")

	tests := []struct {
		name    string
		stdin   string
		args    []string
		message string
	}{
		{"missing argument", "", nil, "missing dictionary path"},
		{"missing file", "", []string{filepath.Join(t.TempDir(), "nope.txt")}, "failed to open dictionary"},
		{"malformed dictionary", "hund", []string{bad}, "dictionary line 2, column 1"},
		{"illegal input byte", "hund \x01", []string{good}, "illegal byte 0x01"},
		{"too many arguments", "", []string{good, good}, "accepts at most 1 arg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tc.stdin, tc.args...)
			if code != exitFatal {
				t.Errorf("exit code = %d; want %d", code, exitFatal)
			}
			if !strings.Contains(stderr, "ERROR:") || !strings.Contains(stderr, tc.message) {
				t.Errorf("stderr = %q; want ERROR with %q", stderr, tc.message)
			}
		})
	}
}

func TestIllegalByteKeepsEarlierOutput(t *testing.T) {
	dict := writeFile(t, "dict.txt", sampleDictionary)
	_, stdout, _ := runCLI(t, "der hund\n\x02", dict)
	if stdout != "the dog\n" {
		t.Errorf("stdout = %q; want %q", stdout, "the dog\n")
	}
}

func TestFailOnMissDisabled(t *testing.T) {
	dict := writeFile(t, "dict.txt", sampleDictionary)
	cfg := writeFile(t, "config.yaml", "translate:\n  fail_on_miss: false\n")

	var out, errOut bytes.Buffer
	code := execute([]string{"--config", cfg, dict}, strings.NewReader("vogel"), &out, &errOut)
	if code != exitOK {
		t.Errorf("exit code = %d; want %d", code, exitOK)
	}
	if out.String() != "<vogel>" {
		t.Errorf("stdout = %q; want %q", out.String(), "<vogel>")
	}
}

func TestLookupCommand(t *testing.T) {
	dict := writeFile(t, "dict.txt", sampleDictionary)

	code, stdout, _ := runCLI(t, "", "lookup", dict, "hund", "Katze")
	if code != exitOK {
		t.Errorf("exit code = %d; want %d", code, exitOK)
	}
	if stdout != "hund:dog\nKatze:Cat\n" {
		t.Errorf("stdout = %q", stdout)
	}

	code, stdout, _ = runCLI(t, "", "lookup", dict, "--query", `der "vogel"`)
	if code != exitMisses {
		t.Errorf("exit code = %d; want %d", code, exitMisses)
	}
	if stdout != "der:the\nvogel:<vogel>\n" {
		t.Errorf("stdout = %q", stdout)
	}

	code, _, stderr := runCLI(t, "", "lookup", dict)
	if code != exitFatal || !strings.Contains(stderr, "no words to look up") {
		t.Errorf("lookup without words: code %d, stderr %q", code, stderr)
	}
}

func TestCheckCommand(t *testing.T) {
	dict := writeFile(t, "dict.txt", sampleDictionary+"hund:hound\n")

	code, stdout, _ := runCLI(t, "", "check", dict)
	if code != exitOK {
		t.Fatalf("exit code = %d; want %d", code, exitOK)
	}
	for _, want := range []string{"entries:     6", "distinct:    5", "duplicates:  1"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout %q does not contain %q", stdout, want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "version")
	if code != exitOK || strings.TrimSpace(stdout) != version {
		t.Errorf("version: code %d, stdout %q", code, stdout)
	}
}

func TestUsageCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "usage")
	if code != exitOK {
		t.Errorf("exit code = %d; want %d", code, exitOK)
	}
	if !strings.Contains(stdout, "Dolmetsch") {
		t.Errorf("usage guide missing title: %q", stdout)
	}
}
