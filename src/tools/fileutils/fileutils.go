// Copyright 2020 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package fileutils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsDir returns true if path exists and is a directory
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// FindFiles returns the sorted paths of all files with the given extension
// inside root and its sub directories. If root is a file, it is returned
// as is, whatever its extension.
func FindFiles(root, ext string) ([]string, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{root}, nil
	}
	var res []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			res = append(res, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}

// ReplaceExt returns path with its extension replaced by ext.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// MirrorPath returns the path in dstRoot matching path in srcRoot.
// If srcRoot is path itself, the base name of path is used.
func MirrorPath(srcRoot, path, dstRoot string) (string, error) {
	rel, err := filepath.Rel(srcRoot, path)
	if err != nil {
		return "", err
	}
	if rel == "." {
		rel = filepath.Base(path)
	}
	return filepath.Join(dstRoot, rel), nil
}
