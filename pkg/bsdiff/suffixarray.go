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
	"github.com/gobsdiff/gobsdiff/internal/suffixsort"
)

// indexMagic is the 13-byte header identifying a serialised suffix
// array index file.
var indexMagic = [13]byte{'S', 'U', 'F', 'F', 'I', 'X', ' ', 'A', 'R', 'R', 'A', 'Y', 0}

// Index is a sorted suffix array of some buffer, plus the element
// width chosen to serialise it compactly.
type Index struct {
	SA    []int
	Width int // 1, 2, 4, or 8 bytes per element
}

// BuildIndex constructs the suffix array of old. It is read-only once
// built and may be shared by concurrent diffs against the same old.
func BuildIndex(old []byte) *Index {
	return &Index{
		SA:    suffixsort.Sort(old),
		Width: widthFor(len(old)),
	}
}

func widthFor(n int) int {
	switch {
	case n <= 1<<8:
		return 1
	case n <= 1<<16:
		return 2
	case n <= 1<<32:
		return 4
	default:
		return 8
	}
}

// Serialize writes the index header, the element-width byte, then the
// array as little-endian integers of that width.
func (idx *Index) Serialize(w io.Writer) error {
	if _, err := w.Write(indexMagic[:]); err != nil {
		return errs.Wrap(errs.KindIO, err, "write index magic")
	}
	if _, err := w.Write([]byte{byte(idx.Width)}); err != nil {
		return errs.Wrap(errs.KindIO, err, "write index width")
	}
	buf := make([]byte, idx.Width)
	for _, off := range idx.SA {
		putWidth(buf, uint64(off), idx.Width)
		if _, err := w.Write(buf); err != nil {
			return errs.Wrap(errs.KindIO, err, "write index element")
		}
	}
	return nil
}

// DeserializeIndex reads a serialised index back, validating the header
// and unit width, and takes the element count from n (the length of
// the associated old buffer — the file itself stores no count).
func DeserializeIndex(r io.Reader, n int) (*Index, error) {
	var hdr [13]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, errs.Wrap(errs.KindCorruptIndex, err, "read index magic")
	}
	if hdr != indexMagic {
		return nil, errs.New(errs.KindCorruptIndex, "bad index magic")
	}
	var widthByte [1]byte
	if _, err := io.ReadFull(r, widthByte[:]); err != nil {
		return nil, errs.Wrap(errs.KindCorruptIndex, err, "read index width")
	}
	width := int(widthByte[0])
	switch width {
	case 1, 2, 4, 8:
	default:
		return nil, errs.Newf(errs.KindCorruptIndex, "invalid index element width %d", width)
	}

	sa := make([]int, n)
	buf := make([]byte, width)
	for k := 0; k < n; k++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errs.Wrap(errs.KindCorruptIndex, err, "index truncated")
		}
		sa[k] = int(getWidth(buf, width))
	}
	return &Index{SA: sa, Width: width}, nil
}

func putWidth(buf []byte, x uint64, width int) {
	switch width {
	case 1:
		buf[0] = byte(x)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(x))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(x))
	case 8:
		binary.LittleEndian.PutUint64(buf, x)
	}
}

func getWidth(buf []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	default:
		return binary.LittleEndian.Uint64(buf)
	}
}
