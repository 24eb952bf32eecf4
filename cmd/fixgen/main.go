// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fixgen compiles a FIX protocol XML dictionary into a header and
// source file pair for use with the fix.h parser runtime.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/goldstar111/FullFIX/codegen"
	"github.com/goldstar111/FullFIX/fixdict"
	"github.com/goldstar111/FullFIX/internal/diag"
)

const usage = `Usage: %s [OPTION...] FILE

Compile a FIX protocol XML dictionary into a header and source file
pair for the fix.h parser runtime.

Options:
`

var (
	headerDir string
	sourceDir string
	verbose   bool
	dryRun    bool
)

func init() {
	pflag.StringVarP(&headerDir, "header-dir", "i", "include", "output directory for the generated header")
	pflag.StringVarP(&sourceDir, "source-dir", "s", "src", "output directory for the generated source file")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log debug-level pipeline progress")
	pflag.BoolVar(&dryRun, "dry-run", false, "run the full pipeline and report counts without writing output files")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		pflag.PrintDefaults()
	}
}

func main() {
	pflag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	if pflag.NArg() != 1 {
		return errors.New("exactly one input XML path is required")
	}
	inputPath := pflag.Arg(0)

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if !dryRun {
		if err := requireDir(headerDir); err != nil {
			return err
		}
		if err := requireDir(sourceDir); err != nil {
			return err
		}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return diag.Wrap(err, diag.IO, inputPath)
	}
	defer in.Close()

	spec, err := fixdict.Compile(in, log)
	if err != nil {
		return err
	}

	base := stem(inputPath)
	prefix := symbolPrefix(base)

	if dryRun {
		log.WithFields(logrus.Fields{
			"tags":     len(spec.Tags),
			"groups":   len(spec.Groups),
			"messages": len(spec.Messages),
		}).Info("dry run: pipeline succeeded")
		return nil
	}

	header, source, err := codegen.Generate(spec, codegen.Options{BaseName: base, Prefix: prefix})
	if err != nil {
		return err
	}

	if err := writeFile(headerDir, base+".h", header); err != nil {
		return err
	}
	if err := writeFile(sourceDir, base+".c", source); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"header": base + ".h", "source": base + ".c"}).Info("generated")
	return nil
}

func requireDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return diag.New(diag.BadOutputDir, path, "must already exist and be a directory")
	}
	return nil
}
