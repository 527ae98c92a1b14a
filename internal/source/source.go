package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// maxFileBytes is the per-file size limit; larger files are skipped.
const maxFileBytes = 1 << 20 // 1MB

// Set is a collection of source files ready for review.
type Set struct {
	Content string
	Files   []string
	Skipped []string
}

// Collect reads the given paths relative to root and concatenates them
// with a "--- File: <relpath> ---" header before each file. Directories
// are walked recursively. Unreadable, binary, and oversized files are
// skipped and listed in Skipped.
func Collect(root string, paths []string) (Set, error) {
	if len(paths) == 0 {
		return Set{}, fmt.Errorf("no files given")
	}

	var files []string
	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(p) {
			abs = filepath.Join(root, p)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return Set{}, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			sub, err := walkDir(abs)
			if err != nil {
				return Set{}, err
			}
			files = append(files, sub...)
		} else {
			files = append(files, abs)
		}
	}
	sort.Strings(files)

	var b strings.Builder
	set := Set{}
	seen := make(map[string]bool)
	for _, abs := range files {
		rel := relTo(root, abs)
		if seen[rel] {
			continue
		}
		seen[rel] = true

		data, err := os.ReadFile(abs)
		if err != nil || len(data) > maxFileBytes || isBinary(data) {
			set.Skipped = append(set.Skipped, rel)
			continue
		}

		fmt.Fprintf(&b, "--- File: %s ---\n", rel)
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		set.Files = append(set.Files, rel)
	}

	if len(set.Files) == 0 {
		return Set{}, fmt.Errorf("no readable files among %d given", len(paths))
	}
	set.Content = b.String()
	return set, nil
}

func walkDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

func relTo(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(abs)
	}
	return filepath.ToSlash(rel)
}

// isBinary reports whether data looks like binary content. A NUL byte
// in the first 8000 bytes is the git heuristic.
func isBinary(data []byte) bool {
	n := len(data)
	if n > 8000 {
		n = 8000
	}
	for _, b := range data[:n] {
		if b == 0 {
			return true
		}
	}
	return false
}
