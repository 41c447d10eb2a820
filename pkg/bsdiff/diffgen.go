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

// generate walks new, binary-searching idx for the longest prefix
// match at each scan position, and emits control+diff+data records to
// enc whenever a candidate match is convincingly better than the
// "shifted old" alignment implied by the previous record, or when scan
// reaches the end of new. This is the heart of the engine: the diff
// segments it emits are near-matches (subtract to long runs of zero
// bytes, which compress extremely well); everything else becomes a
// verbatim extra segment.
func generate(old, newBuf []byte, idx *Index, enc encoder) error {
	var lastScan, lastPos, lastOffset int
	scan := 0
	length := 0

	for scan < len(newBuf) {
		var oldScore int
		scan += length

		matchScanStart := scan
		var pos int
		for scan < len(newBuf) {
			pos, length = findLongestPrefix(idx, old, newBuf[scan:])

			for ; matchScanStart < scan+length; matchScanStart++ {
				if matchScanStart+lastOffset < len(old) &&
					old[matchScanStart+lastOffset] == newBuf[matchScanStart] {
					oldScore++
				}
			}

			if (length == oldScore && length != 0) || length > oldScore+8 {
				break
			}

			if scan+lastOffset < len(old) && old[scan+lastOffset] == newBuf[scan] {
				oldScore--
			}
			scan++
		}

		if length != oldScore || scan == len(newBuf) {
			forwardLen := extendForward(old, newBuf, lastScan, lastPos, scan)

			backwardLen := 0
			if scan < len(newBuf) {
				backwardLen = extendBackward(old, newBuf, lastScan, scan, pos)
			}

			if lastScan+forwardLen > scan-backwardLen {
				forwardLen, backwardLen = resolveOverlap(old, newBuf, lastScan, lastPos, scan, pos, forwardLen, backwardLen)
			}

			diffSize := int64(forwardLen)
			copySize := int64((scan - backwardLen) - (lastScan + forwardLen))
			skipSize := int64((pos - backwardLen) - (lastPos + forwardLen))

			if diffSize != 0 || copySize != 0 {
				if err := enc.encodeControl(control{diffSize: diffSize, copySize: copySize, skipSize: skipSize}); err != nil {
					return err
				}

				diffBytes := make([]byte, diffSize)
				for i := int64(0); i < diffSize; i++ {
					diffBytes[i] = newBuf[lastScan+int(i)] - old[lastPos+int(i)]
				}
				if err := enc.encodeDiff(diffBytes); err != nil {
					return err
				}

				dataStart := lastScan + forwardLen
				if err := enc.encodeData(newBuf[dataStart : dataStart+int(copySize)]); err != nil {
					return err
				}
			}

			lastScan = scan - backwardLen
			lastPos = pos - backwardLen
			lastOffset = pos - scan
		}
	}
	return nil
}

// extendForward finds the prefix of new[lastScan:] (matched byte for
// byte against old[lastPos:]) whose match density 2*matches-length is
// maximal, stopping at whichever buffer's end comes first.
func extendForward(old, newBuf []byte, lastScan, lastPos, scan int) int {
	var matches, bestScore, bestLen int
	for i := 0; lastScan+i < scan && lastPos+i < len(old); i++ {
		if old[lastPos+i] == newBuf[lastScan+i] {
			matches++
		}
		if matches*2-(i+1) > bestScore*2-bestLen {
			bestScore = matches
			bestLen = i + 1
		}
	}
	return bestLen
}

// extendBackward is extendForward's mirror image, growing backward
// from the accepted candidate (scan, pos) towards lastScan.
func extendBackward(old, newBuf []byte, lastScan, scan, pos int) int {
	var matches, bestScore, bestLen int
	for i := 1; scan >= lastScan+i && pos >= i; i++ {
		if old[pos-i] == newBuf[scan-i] {
			matches++
		}
		if matches*2-i > bestScore*2-bestLen {
			bestScore = matches
			bestLen = i
		}
	}
	return bestLen
}

// resolveOverlap picks the split point within the region where the
// forward and backward extensions overlap that maximises
// (forward matches) - (backward matches), attributing each
// overlapping byte to whichever side matches it.
func resolveOverlap(old, newBuf []byte, lastScan, lastPos, scan, pos, forwardLen, backwardLen int) (int, int) {
	overlap := (lastScan + forwardLen) - (scan - backwardLen)
	var score, bestScore, bestSplit int
	for i := 0; i < overlap; i++ {
		if newBuf[lastScan+forwardLen-overlap+i] == old[lastPos+forwardLen-overlap+i] {
			score++
		}
		if newBuf[scan-backwardLen+i] == old[pos-backwardLen+i] {
			score--
		}
		if score > bestScore {
			bestScore = score
			bestSplit = i + 1
		}
	}
	forwardLen += bestSplit - overlap
	backwardLen -= bestSplit
	return forwardLen, backwardLen
}
