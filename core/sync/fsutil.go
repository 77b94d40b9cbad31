package sync

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Versions lists version subdirectories (v21, v22, ...) under dir,
// sorted. A missing dir yields an empty list, not an error.
func Versions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "v") {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// SelectVersions applies the run's version selector to the versions
// discovered under dir.
func (rt *Runtime) SelectVersions(dir string) ([]string, error) {
	versions, err := Versions(dir)
	if err != nil {
		return nil, err
	}
	if rt.Opts.All || rt.Opts.Version == "" {
		return versions, nil
	}
	for _, v := range versions {
		if v == rt.Opts.Version {
			return []string{v}, nil
		}
	}
	return nil, nil
}

// ListFiles returns the relative paths of every regular file under dir,
// sorted. A missing dir yields an empty list. Walking up front keeps the
// copy passes independent of traversal order.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CopyFile copies src to dst verbatim, creating parent directories.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ReplaceTree copies the directory src to dst, removing any previous
// dst first. Used for passthrough directories the overlay never touches.
func ReplaceTree(src, dst string) error {
	files, err := ListFiles(src)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	for _, rel := range files {
		if err := CopyFile(filepath.Join(src, rel), filepath.Join(dst, rel)); err != nil {
			return err
		}
	}
	return nil
}
