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
	"math"
	"testing"
)

func TestIntCodecRoundTrip(t *testing.T) {
	cases := []int64{
		0, 1, -1, 2, -2, 8, -8,
		math.MaxInt64,
		math.MinInt64 + 1,
		1234567890,
		-1234567890,
	}
	for _, x := range cases {
		var buf [8]byte
		putInt64(buf[:], x)
		got := getInt64(buf[:])
		if got != x {
			t.Errorf("putInt64/getInt64(%d) round-trip = %d", x, got)
		}
	}
}

func TestWriteReadInt64(t *testing.T) {
	var buf bytes.Buffer
	values := []int64{0, -1, 42, -42, math.MaxInt64}
	for _, v := range values {
		if err := writeInt64(&buf, v); err != nil {
			t.Fatalf("writeInt64(%d): %v", v, err)
		}
	}
	for _, want := range values {
		got, err := readInt64(&buf)
		if err != nil {
			t.Fatalf("readInt64: %v", err)
		}
		if got != want {
			t.Errorf("readInt64 = %d, want %d", got, want)
		}
	}
}

func TestReadInt64EOF(t *testing.T) {
	var buf bytes.Buffer
	if _, err := readInt64(&buf); err == nil {
		t.Fatal("expected an error reading from an empty stream")
	}
}
