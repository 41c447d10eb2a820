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
	"encoding/binary"
	"io"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

// putInt64 encodes x using the signed-magnitude 64-bit little-endian
// convention used throughout patch streams: non-negative x is written
// as-is, negative x is written as math.MinInt64-x (sign bit set,
// magnitude in the low 63 bits). This keeps small negative control
// values short after entropy coding, unlike two's-complement.
func putInt64(buf []byte, x int64) {
	var m uint64
	if x < 0 {
		m = uint64(-x) | (1 << 63)
	} else {
		m = uint64(x)
	}
	binary.LittleEndian.PutUint64(buf, m)
}

// getInt64 inverts putInt64.
func getInt64(buf []byte) int64 {
	m := binary.LittleEndian.Uint64(buf)
	if m&(1<<63) != 0 {
		return -int64(m &^ (1 << 63))
	}
	return int64(m)
}

// writeInt64 writes a single signed-magnitude 64-bit integer to w.
func writeInt64(w io.Writer, x int64) error {
	var buf [8]byte
	putInt64(buf[:], x)
	_, err := w.Write(buf[:])
	return err
}

// readInt64 reads a single signed-magnitude 64-bit integer from r.
// io.EOF is returned unchanged (used by callers to detect a clean
// end of stream); any other short read is a CorruptPatch.
func readInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, errs.Wrap(errs.KindCorruptPatch, err, "read control integer")
	}
	return getInt64(buf[:]), nil
}
