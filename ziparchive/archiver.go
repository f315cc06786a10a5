// Package ziparchive packages a finished output tree into a zip file.
package ziparchive

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkruczek/mdharvest"
)

var _ mdharvest.Archiver = (*Archiver)(nil)

// Archiver builds <name>.zip in a target directory.
type Archiver struct {
	dir string
}

// NewArchiver creates an Archiver that writes archives into dir. An empty
// dir means the current working directory.
func NewArchiver(dir string) *Archiver {
	return &Archiver{dir: dir}
}

// Archive zips the directory tree rooted at root into <name>.zip and
// returns the archive path. A pre-existing archive of the same name is
// replaced. Entry names use forward slashes relative to root.
func (a *Archiver) Archive(ctx context.Context, root string, name string) (string, error) {
	if name == "" {
		return "", mdharvest.Errorf(mdharvest.EINVALID, "archive name required")
	}
	if _, err := os.Stat(root); err != nil {
		return "", mdharvest.Errorf(mdharvest.ENOTFOUND, "output directory %s: %v", root, err)
	}

	archivePath := filepath.Join(a.dir, name+".zip")
	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		return "", mdharvest.Errorf(mdharvest.EINTERNAL, "replace archive %s: %v", archivePath, err)
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return "", mdharvest.Errorf(mdharvest.EINTERNAL, "create archive %s: %v", archivePath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return "", mdharvest.Errorf(mdharvest.EINTERNAL, "archive %s: %v", root, err)
	}

	if err := zw.Close(); err != nil {
		return "", mdharvest.Errorf(mdharvest.EINTERNAL, "finalize archive %s: %v", archivePath, err)
	}
	return archivePath, nil
}
