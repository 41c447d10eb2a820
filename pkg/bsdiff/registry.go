/*
 * gobsdiff, a suffix-array-driven binary differencing engine.
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

package bsdiff

import (
	"bufio"
	"bytes"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

// formatEntry is one row of the compile-time format table. Unlike a
// mutable process-wide registry map, this table is a package-level
// constant-shaped slice populated once in an init-free var block; there
// is no runtime registration API to avoid accidentally racing it.
type formatEntry struct {
	name    Format
	magic   []byte
	newEnc  func(Config) encoder
	newDec  func(Config) decoder
}

var formatTable = []formatEntry{
	{
		name:   FormatClassic,
		magic:  classicMagic[:],
		newEnc: func(cfg Config) encoder { return newClassicEncoder(cfg) },
		newDec: func(cfg Config) decoder { return newClassicDecoder(cfg) },
	},
	{
		name:   FormatEndsley,
		magic:  endsleyMagic[:],
		newEnc: func(cfg Config) encoder { return newEndsleyEncoder(cfg) },
		newDec: func(cfg Config) decoder { return newEndsleyDecoder(cfg) },
	},
}

// longestMagicLen bounds how many bytes detectFormat peeks at: exactly
// the longest registered magic, never more.
func longestMagicLen() int {
	max := 0
	for _, e := range formatTable {
		if len(e.magic) > max {
			max = len(e.magic)
		}
	}
	return max
}

// detectFormat peeks at br (without consuming more than the longest
// registered magic) and returns the matching format entry, or
// UnknownFormat if none of the registered magics match.
func detectFormat(br *bufio.Reader) (formatEntry, error) {
	peekLen := longestMagicLen()
	head, _ := br.Peek(peekLen)
	for _, e := range formatTable {
		if len(head) >= len(e.magic) && bytes.Equal(head[:len(e.magic)], e.magic) {
			return e, nil
		}
	}
	return formatEntry{}, errs.New(errs.KindUnknownFormat, "no registered patch format magic matched")
}

func lookupFormat(name Format) (formatEntry, bool) {
	for _, e := range formatTable {
		if e.name == name {
			return e, true
		}
	}
	return formatEntry{}, false
}
