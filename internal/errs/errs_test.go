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

package errs

import (
	"errors"
	"testing"
)

func TestKindOfNew(t *testing.T) {
	err := New(KindCorruptPatch, "bad control record")
	if got := KindOf(err); got != KindCorruptPatch {
		t.Errorf("KindOf(New) = %v, want %v", got, KindCorruptPatch)
	}
}

func TestKindOfNewf(t *testing.T) {
	err := Newf(KindUnknownFormat, "magic %x not recognised", []byte{0x01})
	if got := KindOf(err); got != KindUnknownFormat {
		t.Errorf("KindOf(Newf) = %v, want %v", got, KindUnknownFormat)
	}
	if err.Error() == "" {
		t.Error("Newf error message is empty")
	}
}

func TestWrapPreservesKindAndCause(t *testing.T) {
	root := errors.New("disk full")
	wrapped := Wrap(KindIO, root, "write patch header")
	if got := KindOf(wrapped); got != KindIO {
		t.Errorf("KindOf(Wrap) = %v, want %v", got, KindIO)
	}
	if got := Cause(wrapped); got.Error() != root.Error() {
		t.Errorf("Cause(Wrap) = %v, want %v", got, root)
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(KindIO, nil, "no-op") != nil {
		t.Error("Wrap(_, nil, _) should return nil")
	}
}

func TestKindOfUntaggedError(t *testing.T) {
	if got := KindOf(errors.New("plain error")); got != KindNone {
		t.Errorf("KindOf(plain error) = %v, want %v", got, KindNone)
	}
	if got := KindOf(nil); got != KindNone {
		t.Errorf("KindOf(nil) = %v, want %v", got, KindNone)
	}
}

func TestKindStrings(t *testing.T) {
	cases := map[Kind]string{
		KindNone:           "None",
		KindUnknownFormat:  "UnknownFormat",
		KindFormatMismatch: "FormatMismatch",
		KindCorruptPatch:   "CorruptPatch",
		KindCorruptIndex:   "CorruptIndex",
		KindIO:             "Io",
		KindConfigError:    "ConfigError",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
