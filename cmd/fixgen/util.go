// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goldstar111/FullFIX/internal/diag"
)

// stem returns the input path's base filename without extension
// (spec.md §6: base = stem(basename(inputPath))).
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// symbolPrefix derives the C symbol prefix from a base name: every
// "." replaced by "_" (spec.md §6).
func symbolPrefix(base string) string {
	return strings.ReplaceAll(base, ".", "_")
}

// writeFile writes contents to filepath.Join(dir, name), opening,
// writing, and closing within this lexical scope so the descriptor is
// released on every exit path, including I/O failure (spec.md §5).
func writeFile(dir, name, contents string) error {
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return diag.Wrap(err, diag.IO, path)
	}
	defer f.Close()

	if _, err := f.WriteString(contents); err != nil {
		return diag.Wrap(err, diag.IO, path)
	}
	return nil
}
