// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureAbsolute - make a path absolute relative to directory
//
// a leading "~/" is taken from $HOME instead
func EnsureAbsolute(directory string, filePath string) string {
	if strings.HasPrefix(filePath, "~/") {
		if home, err := os.UserHomeDir(); nil == err {
			return filepath.Join(home, filePath[2:])
		}
	}
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// RegularFileExists - true only for an existing non-directory
func RegularFileExists(name string) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return info.Mode().IsRegular()
}
