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

package suffixsort

import (
	"bytes"
	"testing"
)

func isSorted(buf []byte, sa []int) bool {
	for i := 0; i < len(sa)-1; i++ {
		a := buf[sa[i]:]
		b := buf[sa[i+1]:]
		if bytes.Compare(a, b) > 0 {
			return false
		}
	}
	return true
}

func isPermutation(sa []int, n int) bool {
	seen := make([]bool, n)
	for _, v := range sa {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestSortKnownCases(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("banana"),
		[]byte("abcabcabc"),
		[]byte("mississippi"),
		bytes.Repeat([]byte{0}, 64),
		[]byte("Hello, world!"),
	}
	for _, buf := range cases {
		sa := Sort(buf)
		if len(sa) != len(buf) {
			t.Fatalf("Sort(%q): len(sa) = %d, want %d", buf, len(sa), len(buf))
		}
		if !isPermutation(sa, len(buf)) {
			t.Errorf("Sort(%q) = %v is not a permutation of 0..%d", buf, sa, len(buf))
		}
		if !isSorted(buf, sa) {
			t.Errorf("Sort(%q) = %v is not correctly ordered", buf, sa)
		}
	}
}

func TestSortAllSameByte(t *testing.T) {
	buf := bytes.Repeat([]byte{'x'}, 300)
	sa := Sort(buf)
	if !isPermutation(sa, len(buf)) || !isSorted(buf, sa) {
		t.Fatalf("Sort of a constant buffer produced an invalid suffix array")
	}
}
