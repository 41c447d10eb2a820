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

import "io"

// Format names a concrete patch wire format.
type Format string

const (
	// FormatClassic is the three-substream "BSDIFF40" layout (§4.F).
	FormatClassic Format = "classic"
	// FormatEndsley is the single-stream interleaved "ENDSLEY/BSDIFF43"
	// layout (§4.G).
	FormatEndsley Format = "endsley"
	// FormatAuto is only valid as a decode-time request: detect from
	// magic bytes instead of enforcing one.
	FormatAuto Format = "auto"
)

// control is a single patch record: add diffSize bytes from old onto
// the residual stream, copy copySize raw bytes from the extra stream,
// then advance the old-cursor by skipSize (which may be negative).
type control struct {
	diffSize int64
	copySize int64
	skipSize int64
}

// encoder is the write-side capability set shared by every format.
// Concrete formats are a compile-time-constant tagged variant (see
// registry.go) rather than runtime-registered subtypes, per the
// polymorphism-over-formats design note.
type encoder interface {
	writeStart(w io.Writer, newSize int64) error
	encodeControl(c control) error
	encodeDiff(b []byte) error
	encodeData(b []byte) error
	writeFinish() error
}

// decoder is the read-side capability set shared by every format.
type decoder interface {
	readStart(r io.Reader) (newSize int64, hasSize bool, err error)
	decodeControl() (c control, end bool, err error)
	decodeDiff(n int64) ([]byte, error)
	decodeData(n int64) ([]byte, error)
}

// readStart's (newSize, hasSize) return is the explicit, per-format
// replacement for a hasfield-style introspection check on the decoder:
// both formats in this design embed new_size in their header, so
// hasSize is always true here, but the signature keeps the capability
// set honest for a future format that omits it.
