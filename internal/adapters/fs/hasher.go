// Package fs provides content hashing and file copying for venvkit state.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// FormatHash renders a hash as fixed-width lowercase hex.
func FormatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// SameContent reports whether two files have the same size and hash.
// A missing dst reports false without an error.
func SameContent(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", src)
	}
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", dst)
	}
	if srcInfo.Size() != dstInfo.Size() {
		return false, nil
	}

	srcHash, err := ComputeFileHash(src)
	if err != nil {
		return false, err
	}
	dstHash, err := ComputeFileHash(dst)
	if err != nil {
		return false, err
	}
	return srcHash == dstHash, nil
}

// CopyFile copies src to dst through a temporary file in dst's directory,
// so readers never observe a partial file.
func CopyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".copy-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", dst)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Gone after a successful rename

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", src)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", tmpName)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set permissions"), "path", tmpName)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rename file"), "path", dst)
	}
	return nil
}
