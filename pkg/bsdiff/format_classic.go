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
	"bytes"
	"io"
	"io/ioutil"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

var classicMagic = [8]byte{'B', 'S', 'D', 'I', 'F', 'F', '4', '0'}

// classicEncoder implements the three-substream layout: a bzip2 stream
// of control triples, a bzip2 stream of diff bytes, a bzip2 stream of
// extra bytes, back to back, behind a 32-byte header.
//
// The control stream is compressed incrementally as encodeControl is
// called (mirroring how the reference tool streams it), while diff and
// extra bytes are buffered raw and compressed once, in full, on
// writeFinish — their total size is bounded by len(new) so buffering
// them is cheap and lets the two trailing sizes be computed exactly.
type classicEncoder struct {
	cfg     Config
	dest    io.Writer
	newSize int64

	ctrlBuf  bytes.Buffer
	ctrlComp io.WriteCloser

	diffBuf  bytes.Buffer
	extraBuf bytes.Buffer
}

func newClassicEncoder(cfg Config) *classicEncoder {
	return &classicEncoder{cfg: cfg}
}

func (e *classicEncoder) writeStart(w io.Writer, newSize int64) error {
	e.dest = w
	e.newSize = newSize
	comp, err := newBzip2Writer(&e.ctrlBuf, e.cfg)
	if err != nil {
		return err
	}
	e.ctrlComp = comp
	return nil
}

func (e *classicEncoder) encodeControl(c control) error {
	if err := writeInt64(e.ctrlComp, c.diffSize); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control diffSize")
	}
	if err := writeInt64(e.ctrlComp, c.copySize); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control copySize")
	}
	if err := writeInt64(e.ctrlComp, c.skipSize); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control skipSize")
	}
	return nil
}

func (e *classicEncoder) encodeDiff(b []byte) error {
	_, err := e.diffBuf.Write(b)
	return err
}

func (e *classicEncoder) encodeData(b []byte) error {
	_, err := e.extraBuf.Write(b)
	return err
}

func (e *classicEncoder) writeFinish() error {
	if err := e.ctrlComp.Close(); err != nil {
		return errs.Wrap(errs.KindIO, err, "close control stream")
	}

	var diffComp bytes.Buffer
	if err := compressAll(&diffComp, e.diffBuf.Bytes(), e.cfg); err != nil {
		return err
	}
	var extraComp bytes.Buffer
	if err := compressAll(&extraComp, e.extraBuf.Bytes(), e.cfg); err != nil {
		return err
	}

	var hdr [32]byte
	copy(hdr[0:8], classicMagic[:])
	putInt64(hdr[8:16], int64(e.ctrlBuf.Len()))
	putInt64(hdr[16:24], int64(diffComp.Len()))
	putInt64(hdr[24:32], e.newSize)

	if _, err := e.dest.Write(hdr[:]); err != nil {
		return errs.Wrap(errs.KindIO, err, "write classic header")
	}
	if _, err := e.dest.Write(e.ctrlBuf.Bytes()); err != nil {
		return errs.Wrap(errs.KindIO, err, "write control substream")
	}
	if _, err := e.dest.Write(diffComp.Bytes()); err != nil {
		return errs.Wrap(errs.KindIO, err, "write diff substream")
	}
	if _, err := e.dest.Write(extraComp.Bytes()); err != nil {
		return errs.Wrap(errs.KindIO, err, "write extra substream")
	}
	return nil
}

func compressAll(dst *bytes.Buffer, src []byte, cfg Config) error {
	w, err := newBzip2Writer(dst, cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		w.Close()
		return errs.Wrap(errs.KindIO, err, "compress substream")
	}
	return errs.Wrap(errs.KindIO, w.Close(), "close compressed substream")
}

// classicDecoder reads the three substreams in lockstep as control
// records are consumed, per the classic format's ordering invariant.
type classicDecoder struct {
	cfg     Config
	newSize int64
	ctrl    io.ReadCloser
	diff    io.ReadCloser
	extra   io.ReadCloser
}

func newClassicDecoder(cfg Config) *classicDecoder {
	return &classicDecoder{cfg: cfg}
}

func (d *classicDecoder) readStart(r io.Reader) (int64, bool, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, false, errs.Wrap(errs.KindCorruptPatch, err, "read classic magic")
	}
	if magic != classicMagic {
		return 0, false, errs.New(errs.KindCorruptPatch, "bad classic magic")
	}
	var sizes [24]byte
	if _, err := io.ReadFull(r, sizes[:]); err != nil {
		return 0, false, errs.Wrap(errs.KindCorruptPatch, err, "read classic header")
	}
	ctrlLen := getInt64(sizes[0:8])
	diffLen := getInt64(sizes[8:16])
	newSize := getInt64(sizes[16:24])
	if ctrlLen < 0 || diffLen < 0 || newSize < 0 {
		return 0, false, errs.New(errs.KindCorruptPatch, "negative classic header size")
	}

	rest, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, false, errs.Wrap(errs.KindIO, err, "read classic body")
	}
	if int64(len(rest)) < ctrlLen+diffLen {
		return 0, false, errs.New(errs.KindCorruptPatch, "classic patch truncated")
	}

	ctrlBytes := rest[:ctrlLen]
	diffBytes := rest[ctrlLen : ctrlLen+diffLen]
	extraBytes := rest[ctrlLen+diffLen:]

	if d.ctrl, err = newBzip2Reader(bytes.NewReader(ctrlBytes), d.cfg); err != nil {
		return 0, false, err
	}
	if d.diff, err = newBzip2Reader(bytes.NewReader(diffBytes), d.cfg); err != nil {
		return 0, false, err
	}
	if d.extra, err = newBzip2Reader(bytes.NewReader(extraBytes), d.cfg); err != nil {
		return 0, false, err
	}
	d.newSize = newSize
	return newSize, true, nil
}

func (d *classicDecoder) decodeControl() (control, bool, error) {
	diffSize, err := readInt64(d.ctrl)
	if err == io.EOF {
		return control{}, true, nil
	}
	if err != nil {
		return control{}, false, err
	}
	copySize, err := readInt64(d.ctrl)
	if err != nil {
		return control{}, false, errs.Wrap(errs.KindCorruptPatch, err, "truncated control record")
	}
	skipSize, err := readInt64(d.ctrl)
	if err != nil {
		return control{}, false, errs.Wrap(errs.KindCorruptPatch, err, "truncated control record")
	}
	return control{diffSize: diffSize, copySize: copySize, skipSize: skipSize}, false, nil
}

func (d *classicDecoder) decodeDiff(n int64) ([]byte, error) {
	return readExact(d.diff, n)
}

func (d *classicDecoder) decodeData(n int64) ([]byte, error) {
	return readExact(d.extra, n)
}

func readExact(r io.Reader, n int64) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errs.Wrap(errs.KindCorruptPatch, err, "truncated substream")
	}
	return buf, nil
}
