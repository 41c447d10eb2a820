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
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/minio/cli"
	"github.com/sirupsen/logrus"

	"github.com/gobsdiff/gobsdiff/internal/errs"
	"github.com/gobsdiff/gobsdiff/pkg/bsdiff"
)

var commands = []cli.Command{
	diffCmd,
	patchCmd,
	indexCmd,
}

var diffCmd = cli.Command{
	Name:   "diff",
	Usage:  "compute a patch transforming OLD into NEW",
	Action: diffMain,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "format", Value: string(bsdiff.FormatClassic), Usage: "classic or endsley"},
		cli.StringFlag{Name: "index", Usage: "path to a precomputed suffix-array index of OLD"},
	},
}

var patchCmd = cli.Command{
	Name:   "patch",
	Usage:  "apply a patch to OLD to reconstruct NEW",
	Action: patchMain,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "format", Value: string(bsdiff.FormatAuto), Usage: "auto, classic, or endsley"},
		cli.StringFlag{Name: "verify", Usage: "expected xxhash64 digest (hex) of the reconstructed NEW"},
	},
}

var indexCmd = cli.Command{
	Name:   "index",
	Usage:  "precompute and serialise the suffix array of OLD",
	Action: indexMain,
}

func diffMain(ctx *cli.Context) {
	args := ctx.Args()
	if len(args) < 2 {
		cli.ShowCommandHelpAndExit(ctx, "diff", exitBadArgs)
	}

	cfg, err := bsdiff.DefaultConfig()
	fatalIf(err)

	old, err := ioutil.ReadFile(args.Get(0))
	fatalIf(err)
	newBuf, err := ioutil.ReadFile(args.Get(1))
	fatalIf(err)

	format := bsdiff.Format(ctx.String("format"))

	var idx *bsdiff.Index
	if p := ctx.String("index"); p != "" {
		f, err := os.Open(p)
		fatalIf(err)
		defer f.Close()
		idx, err = bsdiff.DeserializeIndex(f, len(old))
		fatalIf(err)
	} else {
		idx = bsdiff.BuildIndex(old)
	}

	outPath := args.Get(2)
	if outPath == "" {
		outPath = tempPath("gobsdiff-patch")
	}

	err = withCreatedFile(outPath, func(f *os.File) error {
		return bsdiff.Diff(cfg, old, newBuf, idx, format, f)
	})
	fatalIf(err)

	logrus.WithField("path", outPath).Info("patch written")
	fmt.Println(outPath)
}

func patchMain(ctx *cli.Context) {
	args := ctx.Args()
	if len(args) < 2 {
		cli.ShowCommandHelpAndExit(ctx, "patch", exitBadArgs)
	}

	cfg, err := bsdiff.DefaultConfig()
	fatalIf(err)

	old, err := ioutil.ReadFile(args.Get(0))
	fatalIf(err)
	patchFile, err := os.Open(args.Get(1))
	fatalIf(err)
	defer patchFile.Close()

	format := bsdiff.Format(ctx.String("format"))
	newBuf, err := bsdiff.Patch(cfg, old, patchFile, format)
	fatalIf(err)

	if want := ctx.String("verify"); want != "" {
		got := fmt.Sprintf("%x", bsdiff.Digest(newBuf))
		if got != want {
			fatalf(errs.Newf(errs.KindCorruptPatch, "digest mismatch: got %s, want %s", got, want))
		}
	}

	outPath := args.Get(2)
	if outPath == "" {
		outPath = tempPath("gobsdiff-new")
	}

	err = withCreatedFile(outPath, func(f *os.File) error {
		_, err := f.Write(newBuf)
		return err
	})
	fatalIf(err)

	logrus.WithFields(logrus.Fields{
		"path": outPath,
		"size": humanize.Bytes(uint64(len(newBuf))),
	}).Info("new file written")
	fmt.Println(outPath)
}

func indexMain(ctx *cli.Context) {
	args := ctx.Args()
	if len(args) < 1 {
		cli.ShowCommandHelpAndExit(ctx, "index", exitBadArgs)
	}

	old, err := ioutil.ReadFile(args.Get(0))
	fatalIf(err)

	idx := bsdiff.BuildIndex(old)

	outPath := args.Get(1)
	if outPath == "" {
		outPath = tempPath("gobsdiff-index")
	}

	err = withCreatedFile(outPath, func(f *os.File) error {
		return idx.Serialize(f)
	})
	fatalIf(err)

	fmt.Println(outPath)
}

// withCreatedFile creates path, runs fn against it, and removes the
// partial file if either fn or the final close fails, per the
// destination-cleanup requirement in the error handling design.
func withCreatedFile(path string, fn func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "create output")
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return fn(f)
}

func tempPath(prefix string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s", prefix, uuid.NewString()))
}

const exitBadArgs = 2

func fatalIf(err error) {
	if err == nil {
		return
	}
	fatalf(err)
}

func fatalf(err error) {
	logrus.WithField("kind", errs.KindOf(err).String()).Error(err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch errs.KindOf(err) {
	case errs.KindUnknownFormat:
		return 3
	case errs.KindFormatMismatch:
		return 4
	case errs.KindCorruptPatch:
		return 5
	case errs.KindCorruptIndex:
		return 6
	case errs.KindIO:
		return 7
	case errs.KindConfigError:
		return 8
	default:
		return 1
	}
}
