package platform

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// CopyTree copies the directory tree rooted at src inside srcFS to dst on
// disk. All immediate children of a directory are copied concurrently; the
// parent completes only when every child has. The first error cancels the
// remaining children, but files already written are not rolled back.
func CopyTree(srcFS fs.FS, src, dst string) error {
	info, err := fs.Stat(srcFS, src)
	if err != nil {
		return fmt.Errorf("reading template root %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template root %s is not a directory", src)
	}
	return copyDir(srcFS, src, dst)
}

func copyDir(srcFS fs.FS, src, dst string) error {
	entries, err := fs.ReadDir(srcFS, src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	var g errgroup.Group
	for _, entry := range entries {
		srcChild := path.Join(src, entry.Name())
		dstChild := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			g.Go(func() error {
				return copyDir(srcFS, srcChild, dstChild)
			})
			continue
		}

		g.Go(func() error {
			data, err := fs.ReadFile(srcFS, srcChild)
			if err != nil {
				return fmt.Errorf("reading %s: %w", srcChild, err)
			}
			if err := os.WriteFile(dstChild, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", dstChild, err)
			}
			return nil
		})
	}
	return g.Wait()
}
