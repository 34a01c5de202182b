package sweep

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
)

// FindDocuments walks root and returns the slash-separated, root-relative
// paths of files whose base name matches pattern. Directories named in
// exclude, and .git, are not descended into.
func FindDocuments(root, pattern string, exclude []string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var found []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != root && (d.Name() == ".git" || slices.Contains(exclude, d.Name())) {
				return filepath.SkipDir
			}
			return nil
		}

		if ok, _ := filepath.Match(pattern, d.Name()); !ok {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}

	return found, nil
}
