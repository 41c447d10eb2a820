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
	"github.com/gobsdiff/gobsdiff/internal/errs"
)

// apply consumes control records from dec and reconstructs new from
// old, writing newSize bytes total. It is the mirror image of
// generate: diff segments are reconstituted by adding the stored
// residual back onto old, extra segments are copied verbatim.
func apply(old []byte, newSize int64, dec decoder) ([]byte, error) {
	out := make([]byte, 0, newSize)
	var oldPos int64

	for {
		c, end, err := dec.decodeControl()
		if err != nil {
			return nil, err
		}
		if end {
			break
		}

		if c.diffSize < 0 || c.copySize < 0 {
			return nil, errs.New(errs.KindCorruptPatch, "negative control size")
		}
		if int64(len(out))+c.diffSize+c.copySize > newSize {
			return nil, errs.New(errs.KindCorruptPatch, "record overruns declared new size")
		}
		if oldPos < 0 || oldPos+c.diffSize > int64(len(old)) {
			return nil, errs.New(errs.KindCorruptPatch, "old-cursor out of bounds")
		}

		diffBytes, err := dec.decodeDiff(c.diffSize)
		if err != nil {
			return nil, err
		}
		for i, b := range diffBytes {
			diffBytes[i] = b + old[oldPos+int64(i)]
		}
		out = append(out, diffBytes...)

		dataBytes, err := dec.decodeData(c.copySize)
		if err != nil {
			return nil, err
		}
		out = append(out, dataBytes...)

		oldPos += c.diffSize + c.skipSize
	}

	if int64(len(out)) != newSize {
		return nil, errs.Newf(errs.KindCorruptPatch, "reconstructed %d bytes, expected %d", len(out), newSize)
	}
	return out, nil
}
