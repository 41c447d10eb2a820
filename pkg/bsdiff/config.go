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
	"os"
	"strings"

	"github.com/gobsdiff/gobsdiff/internal/errs"
)

// EnvLowMem is the environment variable consulted once at CLI startup
// to fill Config.LowMem's default. Named for this rewrite per the
// config-via-environment-variable design note; the reference C tools'
// variable was JULIA_BSDIFF_LOWMEM.
const EnvLowMem = "BSDIFF_LOWMEM"

// Config carries every tunable that the reference tools read from the
// environment or command line, threaded explicitly into the format
// constructors instead of read ambiently inside them.
type Config struct {
	// LowMem selects a small bzip2 block size and, for the C tools,
	// the decompressor's small-memory mode.
	LowMem bool
	// Level is the bzip2 block size, 1..9. Zero means "use the
	// default" (9, or 1 if LowMem is set).
	Level int
}

// DefaultConfig returns a Config with Level at its default and LowMem
// read from EnvLowMem, matching the C tools' default behaviour. It is
// read once at process start by the CLI; library callers should
// normally build a Config explicitly instead.
func DefaultConfig() (Config, error) {
	lowMem, err := parseLowMem(os.Getenv(EnvLowMem))
	if err != nil {
		return Config{}, err
	}
	return Config{LowMem: lowMem, Level: 9}, nil
}

func parseLowMem(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return false, nil
	case "1", "true", "t", "yes", "y":
		return true, nil
	case "0", "false", "f", "no", "n":
		return false, nil
	default:
		return false, errs.Newf(errs.KindConfigError, "invalid %s value %q", EnvLowMem, v)
	}
}
