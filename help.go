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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Dolmetsch %s**

Word-for-word translation of plain text through a bilingual dictionary.
Reads text on standard input and writes the translation to standard output.

Built with Go %s

# 1. Dictionary format
* One entry per line: `+"`word:translation`"+`
* Both sides are lowercase ASCII letters only
* Every entry ends with a newline; no blank lines, no spaces
* A word listed twice keeps its last translation

# 2. Translation rules
* Runs of letters are words; everything else is copied unchanged
* `+"`Hund`"+` becomes `+"`Dog`"+`: a leading capital is kept
* `+"`HUND`"+` becomes `+"`Dog`"+`: other capitals are folded
* Unknown words are printed as `+"`<word>`"+`
* Only printable ASCII and newlines are accepted as input

# 3. Exit status
* 0: every word was translated
* 1: at least one word was unknown (see `+"`fail_on_miss`"+`)
* 2: usage error, unreadable file or malformed input

# 4. Commands
* dolmetsch <dictionary> < input.txt
* dolmetsch lookup <dictionary> hund katze
* dolmetsch check <dictionary>
* dolmetsch browse <dictionary>
* dolmetsch settings

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
