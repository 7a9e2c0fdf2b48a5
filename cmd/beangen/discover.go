package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// discover expands the command arguments into the sorted list of source
// files to process. Directories are searched with the include patterns and
// filtered with the exclude patterns; files named explicitly are always kept;
// other arguments are glob patterns.
func discover(args, include, exclude []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && !info.IsDir():
			seen[filepath.Clean(arg)] = true
		case err == nil:
			if err := discoverDir(arg, include, exclude, seen); err != nil {
				return nil, err
			}
		default:
			matches, gerr := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if gerr != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, gerr)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%s: no such file or pattern match", arg)
			}
			for _, m := range matches {
				if !excluded(m, exclude) {
					seen[filepath.Clean(m)] = true
				}
			}
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	slices.Sort(files)
	return files, nil
}

func discoverDir(dir string, include, exclude []string, seen map[string]bool) error {
	fsys := os.DirFS(dir)
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, rel := range matches {
			if excluded(rel, exclude) {
				continue
			}
			seen[filepath.Join(dir, filepath.FromSlash(rel))] = true
		}
	}
	return nil
}

// excluded reports whether the slash-separated path or its base name matches
// one of the patterns.
func excluded(path string, patterns []string) bool {
	path = filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
