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

// strcmplen compares the byte ranges p and q and returns the sign of
// their lexicographic comparison (shorter-is-smaller on a shared
// prefix) together with the length of their common prefix. Bounded
// slice indexing is used instead of raw pointers; the compiler is free
// to vectorise the comparison loop.
func strcmplen(p, q []byte) (sign int, common int) {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	i := 0
	for i < n && p[i] == q[i] {
		i++
	}
	switch {
	case i == len(p) && i == len(q):
		return 0, i
	case i == len(p):
		return -1, i
	case i == len(q):
		return 1, i
	case p[i] < q[i]:
		return -1, i
	default:
		return 1, i
	}
}

// findLongestPrefix returns (pos, length) such that old[pos:pos+length]
// equals new[t:t+length] and length is maximal over every suffix in
// old's suffix array. It binary searches idx.SA using strcmplen,
// maintaining cached common-prefix lengths on each bracket endpoint so
// that bytes already known equal are never re-compared — without this,
// naive binary search over strings degrades towards O(log(n)*L^2).
func findLongestPrefix(idx *Index, old, target []byte) (pos int, length int) {
	n := len(idx.SA)
	if n == 0 {
		return 0, 0
	}
	lo, hi := 0, n-1
	_, loC := strcmplen(old[idx.SA[lo]:], target)
	_, hiC := strcmplen(old[idx.SA[hi]:], target)

	for hi-lo >= 2 {
		mid := (lo + hi) / 2
		start := loC
		if hiC < start {
			start = hiC
		}
		suffix := old[idx.SA[mid]:]
		var sign, common int
		if start >= len(suffix) || start >= len(target) {
			sign, common = strcmplen(suffix, target)
		} else {
			s, c := strcmplen(suffix[start:], target[start:])
			sign, common = s, start+c
		}
		if sign <= 0 {
			lo, loC = mid, common
		} else {
			hi, hiC = mid, common
		}
	}

	if loC > hiC {
		return idx.SA[lo], loC
	}
	return idx.SA[hi], hiC
}
