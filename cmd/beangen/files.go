package main

import (
	"os"
	"strings"
)

// sourceFile is a source unit read from disk.
type sourceFile struct {
	path  string
	lines []string
	// eol is the line terminator of the file, "\n" or "\r\n".
	eol string
	// newline records whether the content ended with a line terminator.
	newline bool
	perm    os.FileMode
}

func readSourceFile(path string) (*sourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}
	newline := strings.HasSuffix(content, eol)
	return &sourceFile{
		path:    path,
		lines:   strings.Split(strings.TrimSuffix(content, eol), eol),
		eol:     eol,
		newline: newline,
		perm:    info.Mode().Perm(),
	}, nil
}

// write replaces the file content with lines, keeping the line terminator
// and final newline of the original content.
func (f *sourceFile) write(lines []string) error {
	content := strings.Join(lines, f.eol)
	if f.newline {
		content += f.eol
	}
	return os.WriteFile(f.path, []byte(content), f.perm)
}
