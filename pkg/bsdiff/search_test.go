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

import "testing"

func TestStrcmplen(t *testing.T) {
	cases := []struct {
		p, q       string
		wantSign   int
		wantCommon int
	}{
		{"", "", 0, 0},
		{"abc", "abc", 0, 3},
		{"abc", "abd", -1, 2},
		{"abd", "abc", 1, 2},
		{"ab", "abc", -1, 2},
		{"abc", "ab", 1, 2},
	}
	for _, c := range cases {
		sign, common := strcmplen([]byte(c.p), []byte(c.q))
		if sign != c.wantSign || common != c.wantCommon {
			t.Errorf("strcmplen(%q, %q) = (%d, %d), want (%d, %d)",
				c.p, c.q, sign, common, c.wantSign, c.wantCommon)
		}
	}
}

// bruteLongestPrefix finds the longest match the slow way, to check
// findLongestPrefix's binary search against a trusted reference.
func bruteLongestPrefix(old, target []byte) (pos, length int) {
	best := -1
	bestLen := -1
	for i := range old {
		_, common := strcmplen(old[i:], target)
		if common > bestLen {
			bestLen = common
			best = i
		}
	}
	if best < 0 {
		return 0, 0
	}
	return best, bestLen
}

func TestFindLongestPrefixMatchesBruteForce(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog, the quick fox")
	idx := BuildIndex(old)

	targets := []string{
		"the quick brown fox",
		"the lazy dog, the quick",
		"fox jumps",
		"zzz not present zzz",
		"",
		"dog",
	}
	for _, target := range targets {
		gotPos, gotLen := findLongestPrefix(idx, old, []byte(target))
		wantPos, wantLen := bruteLongestPrefix(old, []byte(target))
		if gotLen != wantLen {
			t.Errorf("findLongestPrefix(%q): length = %d, want %d", target, gotLen, wantLen)
			continue
		}
		if gotLen > 0 {
			got := string(old[gotPos : gotPos+gotLen])
			want := string(old[wantPos : wantPos+wantLen])
			if got != want {
				t.Errorf("findLongestPrefix(%q): matched %q, want a match of %q", target, got, want)
			}
		}
	}
}

func TestFindLongestPrefixEmptyIndex(t *testing.T) {
	idx := BuildIndex(nil)
	pos, length := findLongestPrefix(idx, nil, []byte("anything"))
	if pos != 0 || length != 0 {
		t.Errorf("findLongestPrefix on an empty index = (%d, %d), want (0, 0)", pos, length)
	}
}
