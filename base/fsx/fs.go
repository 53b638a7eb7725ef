// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers: splitting a path into a
// directory FS, existence checks, and a debounced file change watcher.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/nanogui/base/errors"
	"github.com/mitchellh/go-homedir"
)

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. A leading ~ is expanded to the home
// directory. These can then be used to access the file using the
// FS-based interface, consistent with embed and other use-cases.
func DirFS(fpath string) (fs.FS, string, error) {
	fpath, err := homedir.Expand(fpath)
	if err != nil {
		return nil, "", err
	}
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	return os.DirFS(dir), fname, nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	fi, err := fs.Stat(fsys, filePath)
	if err == nil {
		return !fi.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FileExists is [FileExistsFS] on the OS file system, for a path
// that may start with ~.
func FileExists(fpath string) (bool, error) {
	fsys, fname, err := DirFS(fpath)
	if err != nil {
		return false, err
	}
	return FileExistsFS(fsys, fname)
}
