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

	"github.com/dsnet/compress/bzip2"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

// newBzip2Writer opens a streaming bzip2 compressor at the configured
// block size. LowMem forces the smallest block size regardless of
// Level, matching the C reference tools' LOWMEM behaviour.
func newBzip2Writer(w io.Writer, cfg Config) (io.WriteCloser, error) {
	level := cfg.Level
	if level == 0 {
		level = 9
	}
	if cfg.LowMem {
		level = 1
	}
	bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, err, "open bzip2 writer")
	}
	return bw, nil
}

// newBzip2Reader opens a streaming bzip2 decompressor. LowMem is
// recorded for parity with the C tools' small-memory decode mode; the
// pure-Go decoder here has no separate memory/speed tradeoff to flip,
// so it is accepted but does not change decode behaviour.
func newBzip2Reader(r io.Reader, cfg Config) (io.ReadCloser, error) {
	br, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, errs.Wrap(errs.KindCorruptPatch, err, "open bzip2 reader")
	}
	return br, nil
}
