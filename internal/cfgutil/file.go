// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// FileExists reports whether the named file or directory exists.
func FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func CleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	if strings.HasPrefix(path, "~") {
		var homeDir string

		var userName string
		if i := strings.IndexAny(path, "/\\"); i != -1 {
			userName = path[1:i]
		} else {
			userName = path[1:]
		}

		if userName == "" {
			u, err := user.Current()
			if err == nil {
				homeDir = u.HomeDir
			} else {
				homeDir = os.Getenv("HOME")
			}
		} else {
			u, err := user.Lookup(userName)
			if err == nil {
				homeDir = u.HomeDir
			}
		}

		path = strings.Replace(path, "~"+userName, homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
