package workspace

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/venvkit/internal/adapters/fs"
	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/venvkit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// mirrorDir makes the regular files of dst match those of src. Files missing
// upstream are deleted; new files and files whose size or hash differ are copied.
// The source is only read.
func mirrorDir(ctx context.Context, probe ports.PathProbe, src, dst string) error {
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dst)
	}

	upstream, err := probe.ListFiles(src)
	if err != nil {
		return err
	}
	local, err := probe.ListFiles(dst)
	if err != nil {
		return err
	}

	for _, name := range local {
		if _, found := slices.BinarySearch(upstream, name); found {
			continue
		}
		if err := os.Remove(filepath.Join(dst, name)); err != nil && !os.IsNotExist(err) {
			return zerr.With(zerr.Wrap(err, "failed to remove stale file"), "file", name)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, name := range upstream {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			from, to := filepath.Join(src, name), filepath.Join(dst, name)
			same, err := fs.SameContent(from, to)
			if err != nil {
				return err
			}
			if same {
				return nil
			}
			return fs.CopyFile(from, to, domain.FilePerm)
		})
	}
	return g.Wait()
}
