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

package main

import (
	"fmt"
	"os"

	"github.com/minio/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	app := cli.NewApp()
	app.Name = "gobsdiff"
	app.Usage = "suffix-array-driven binary differencing engine"
	app.Commands = commands
	app.CommandNotFound = func(ctx *cli.Context, command string) {
		usageFatalf("command not found: '%s'\n", command)
	}
	app.RunAndExitOnError()
}

func usageFatalf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(exitBadArgs)
}
