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
	"io"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

var endsleyMagic = [16]byte{'E', 'N', 'D', 'S', 'L', 'E', 'Y', '/', 'B', 'S', 'D', 'I', 'F', 'F', '4', '3'}

// endsleyEncoder writes a single bzip2 stream following the 24-byte
// header: control triple, diff bytes, extra bytes, repeated, with the
// stream's own end signalling the end of records.
type endsleyEncoder struct {
	cfg  Config
	comp io.WriteCloser
}

func newEndsleyEncoder(cfg Config) *endsleyEncoder {
	return &endsleyEncoder{cfg: cfg}
}

func (e *endsleyEncoder) writeStart(w io.Writer, newSize int64) error {
	var hdr [24]byte
	copy(hdr[0:16], endsleyMagic[:])
	putInt64(hdr[16:24], newSize)
	if _, err := w.Write(hdr[:]); err != nil {
		return errs.Wrap(errs.KindIO, err, "write endsley header")
	}
	comp, err := newBzip2Writer(w, e.cfg)
	if err != nil {
		return err
	}
	e.comp = comp
	return nil
}

func (e *endsleyEncoder) encodeControl(c control) error {
	if err := writeInt64(e.comp, c.diffSize); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control diffSize")
	}
	if err := writeInt64(e.comp, c.copySize); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control copySize")
	}
	if err := writeInt64(e.comp, c.skipSize); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control skipSize")
	}
	return nil
}

func (e *endsleyEncoder) encodeDiff(b []byte) error {
	_, err := e.comp.Write(b)
	return errs.Wrap(errs.KindIO, err, "write diff bytes")
}

func (e *endsleyEncoder) encodeData(b []byte) error {
	_, err := e.comp.Write(b)
	return errs.Wrap(errs.KindIO, err, "write extra bytes")
}

func (e *endsleyEncoder) writeFinish() error {
	return errs.Wrap(errs.KindIO, e.comp.Close(), "close endsley stream")
}

// endsleyDecoder reads records directly off the single decompressed
// stream; decodeControl returning end=true at a clean record boundary
// signals termination, and EOF in the middle of a record is corrupt.
type endsleyDecoder struct {
	cfg     Config
	newSize int64
	stream  io.ReadCloser
}

func newEndsleyDecoder(cfg Config) *endsleyDecoder {
	return &endsleyDecoder{cfg: cfg}
}

func (d *endsleyDecoder) readStart(r io.Reader) (int64, bool, error) {
	var magic [16]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, false, errs.Wrap(errs.KindCorruptPatch, err, "read endsley magic")
	}
	if magic != endsleyMagic {
		return 0, false, errs.New(errs.KindCorruptPatch, "bad endsley magic")
	}
	var sizeBuf [8]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return 0, false, errs.Wrap(errs.KindCorruptPatch, err, "read endsley new size")
	}
	newSize := getInt64(sizeBuf[:])
	if newSize < 0 {
		return 0, false, errs.New(errs.KindCorruptPatch, "negative endsley new size")
	}
	stream, err := newBzip2Reader(r, d.cfg)
	if err != nil {
		return 0, false, err
	}
	d.stream = stream
	d.newSize = newSize
	return newSize, true, nil
}

func (d *endsleyDecoder) decodeControl() (control, bool, error) {
	diffSize, err := readInt64(d.stream)
	if err == io.EOF {
		return control{}, true, nil
	}
	if err != nil {
		return control{}, false, err
	}
	copySize, err := readInt64(d.stream)
	if err != nil {
		return control{}, false, errs.Wrap(errs.KindCorruptPatch, err, "mid-record end of stream")
	}
	skipSize, err := readInt64(d.stream)
	if err != nil {
		return control{}, false, errs.Wrap(errs.KindCorruptPatch, err, "mid-record end of stream")
	}
	return control{diffSize: diffSize, copySize: copySize, skipSize: skipSize}, false, nil
}

func (d *endsleyDecoder) decodeDiff(n int64) ([]byte, error) {
	return readExact(d.stream, n)
}

func (d *endsleyDecoder) decodeData(n int64) ([]byte, error) {
	return readExact(d.stream, n)
}
