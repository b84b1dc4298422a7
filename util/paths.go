// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken from directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if something exists at name
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - name must already exist and be a directory
func EnsureDirectory(name string) error {
	fileInfo, err := os.Stat(name)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", name)
	}
	return nil
}

// PlainFileName - join a bare file name onto directory
//
// a name carrying any directory part is rejected, a blank directory
// leaves the name unchanged
func PlainFileName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
	default:
		return "", fmt.Errorf("Files: %q is not plain name", name)
	}
	if "" == directory {
		return name, nil
	}
	return EnsureAbsolute(directory, name), nil
}
