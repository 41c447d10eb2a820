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

// Package bsdiff implements the suffix-array-driven binary differencing
// engine: building/serialising suffix-array indexes, generating patches
// in the classic ("BSDIFF40") or endsley ("ENDSLEY/BSDIFF43") wire
// formats, and applying them. See the package's component files for the
// pieces named in the design: intcodec.go (A), suffixarray.go (B),
// search.go (C), diffgen.go (D), apply.go (E), format_classic.go (F),
// format_endsley.go (G), registry.go (H), and this file (J).
package bsdiff

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

// Diff computes a patch transforming old into newBuf, using idx as
// old's suffix-array index (build one with BuildIndex if the caller
// doesn't already have one), and writes it to w in the requested
// format. FormatAuto is not valid here; a concrete format must be
// named for encoding.
func Diff(cfg Config, old, newBuf []byte, idx *Index, format Format, w io.Writer) error {
	entry, ok := lookupFormat(format)
	if !ok {
		return errs.Newf(errs.KindUnknownFormat, "unknown patch format %q", format)
	}

	enc := entry.newEnc(cfg)
	if err := enc.writeStart(w, int64(len(newBuf))); err != nil {
		return err
	}
	if err := generate(old, newBuf, idx, enc); err != nil {
		return err
	}
	// write_finish must run on every path, including when a caller
	// wrapping this in a two-argument convenience API ignores its
	// return value, so that buffered substreams are always committed
	// and header sizes always back-patched (§9 open question).
	if err := enc.writeFinish(); err != nil {
		return errs.Wrap(errs.KindIO, err, "commit patch")
	}

	logrus.WithFields(logrus.Fields{
		"format":  format,
		"oldSize": len(old),
		"newSize": len(newBuf),
	}).Info("gobsdiff: diff generated")
	return nil
}

// Patch reconstructs new from old by applying the patch read from r.
// If format is FormatAuto, the format is detected from the stream's
// magic bytes; otherwise the stream's actual format must match format
// exactly or FormatMismatch is returned.
func Patch(cfg Config, old []byte, r io.Reader, format Format) ([]byte, error) {
	br := bufio.NewReader(r)
	entry, err := detectFormat(br)
	if err != nil {
		return nil, err
	}
	if format != FormatAuto && format != "" && format != entry.name {
		return nil, errs.Newf(errs.KindFormatMismatch, "requested format %q, patch is format %q", format, entry.name)
	}

	dec := entry.newDec(cfg)
	newSize, hasSize, err := dec.readStart(br)
	if err != nil {
		return nil, err
	}
	if !hasSize {
		return nil, errs.New(errs.KindCorruptPatch, "patch does not declare a new size")
	}

	out, err := apply(old, newSize, dec)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"format":  entry.name,
		"oldSize": len(old),
		"newSize": len(out),
	}).Info("gobsdiff: patch applied")
	return out, nil
}
