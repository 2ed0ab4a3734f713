// Copyright 2026 The spongekit Authors
// This file is part of the keccak library.
//
// keccaksum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// keccaksum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with keccaksum. If not, see <http://www.gnu.org/licenses/>.

// keccaksum prints Keccak digests of files, sha256sum-style. With no file
// arguments it hashes standard input. Note these are original Keccak
// digests, not NIST SHA-3.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/spongekit/keccak"
)

var (
	wideFlag = &cli.BoolFlag{
		Name:  "512",
		Usage: "compute 512-bit digests instead of 256-bit",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log progress for each file",
	}
)

var app = &cli.App{
	Name:      "keccaksum",
	Usage:     "print Keccak-256 (or Keccak-512) checksums",
	ArgsUsage: "[file ...]",
	Flags:     []cli.Flag{wideFlag, verboseFlag},
	Action:    run,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	wide := ctx.Bool(wideFlag.Name)
	if ctx.Bool(verboseFlag.Name) {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if ctx.NArg() == 0 {
		sum, err := digest(os.Stdin, wide)
		if err != nil {
			return err
		}
		fmt.Printf("%s  -\n", sum)
		return nil
	}

	// Each file gets its own sponge; digests share nothing, so the files
	// can be hashed in parallel. Output order still follows the arguments.
	var g errgroup.Group
	lines := make([]string, ctx.NArg())
	for i, name := range ctx.Args().Slice() {
		i, name := i, name
		g.Go(func() error {
			logrus.WithField("file", name).Debug("hashing")
			sum, err := digestFile(name, wide)
			if err != nil {
				logrus.WithError(err).WithField("file", name).Error("hash failed")
				return err
			}
			lines[i] = fmt.Sprintf("%s  %s", sum, name)
			return nil
		})
	}
	err := g.Wait()
	for _, line := range lines {
		if line != "" {
			fmt.Println(line)
		}
	}
	if err != nil {
		return cli.Exit("keccaksum: not all files were hashed", 1)
	}
	return nil
}

func digestFile(name string, wide bool) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return digest(f, wide)
}

func digest(r io.Reader, wide bool) (string, error) {
	if wide {
		h, err := keccak.Sum512(r)
		if err != nil {
			return "", err
		}
		return h.String(), nil
	}
	h, err := keccak.Sum256(r)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}
