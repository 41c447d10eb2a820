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

import "github.com/cespare/xxhash/v2"

// Digest returns a 64-bit content hash of buf for operator-facing
// verification logging. It is never embedded in a patch's wire format:
// doing so would make patches produced by this engine diverge
// byte-for-byte from the reference tools' output.
func Digest(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}
