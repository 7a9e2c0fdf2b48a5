// Package region locates and rewrites the generated region of a source unit.
//
// The region is delimited by two marker lines. Everything before the start
// marker and after the end marker belongs to the author and is never changed:
//
//	split, err := region.Locate(lines)
//	if err != nil {
//	    return err
//	}
//	out := region.Rewrite(split.Prefix, split.Suffix, body)
//
// Marker lines are recognized whatever their indentation and are always
// written back in canonical form.
package region

import (
	"strings"

	"goa.design/beans/codegen/markers"
)

const (
	// StartMarker opens the generated region.
	StartMarker = "//------------------------- AUTOGENERATED START -------------------------"
	// EndMarker closes the generated region.
	EndMarker = "//-------------------------- AUTOGENERATED END --------------------------"

	// DefaultIndent is the indentation of generated lines.
	DefaultIndent = "\t"
)

// Split is a source unit cut around its generated region.
type Split struct {
	// Prefix holds the lines before the start marker.
	Prefix []string
	// Region holds the lines between the markers.
	Region []string
	// Suffix holds the lines after the end marker.
	Suffix []string
	// Created reports whether the start marker was missing and the region is
	// new.
	Created bool
	// Completed reports whether the end marker was missing and the region
	// was closed right after the start marker.
	Completed bool
}

// IsStart reports whether line is a start marker at any indentation.
func IsStart(line string) bool {
	return markers.IsGeneratedStart(line)
}

// IsEnd reports whether line is an end marker at any indentation.
func IsEnd(line string) bool {
	return markers.IsGeneratedEnd(line)
}

// Locate finds the generated region of lines. A missing region is created at
// the end of the unit, separated by one blank line. A start marker without an
// end marker gets an empty region closed right after it. An end marker
// without a start marker, or more than one marker of a kind, is a
// StructuralError.
func Locate(lines []string) (*Split, error) {
	start, end := -1, -1
	for i, line := range lines {
		switch {
		case IsStart(line):
			if start >= 0 {
				return nil, markers.Errorf(i, "duplicate generated region start marker, first at line %d", start+1)
			}
			start = i
		case IsEnd(line):
			if end >= 0 {
				return nil, markers.Errorf(i, "duplicate generated region end marker, first at line %d", end+1)
			}
			end = i
		}
	}

	switch {
	case start < 0 && end >= 0:
		return nil, markers.Errorf(end, "generated region end marker without start marker")
	case start >= 0 && end >= 0 && end < start:
		return nil, markers.Errorf(end, "generated region end marker precedes start marker at line %d", start+1)
	case start < 0:
		prefix := clone(lines)
		if n := len(prefix); n > 0 && strings.TrimSpace(prefix[n-1]) != "" {
			prefix = append(prefix, "")
		}
		return &Split{Prefix: prefix, Created: true}, nil
	case end < 0:
		return &Split{
			Prefix:    clone(lines[:start]),
			Suffix:    clone(lines[start+1:]),
			Completed: true,
		}, nil
	default:
		return &Split{
			Prefix: clone(lines[:start]),
			Region: clone(lines[start+1 : end]),
			Suffix: clone(lines[end+1:]),
		}, nil
	}
}

// Rewrite joins prefix, the canonical markers around region, and suffix. It
// does not modify its arguments.
func Rewrite(prefix, suffix, region []string) []string {
	out := make([]string, 0, len(prefix)+len(region)+len(suffix)+2)
	out = append(out, prefix...)
	out = append(out, StartMarker)
	out = append(out, region...)
	out = append(out, EndMarker)
	return append(out, suffix...)
}

// ResolveIndent replaces the leading tabs of each region line with as many
// copies of indent. Lines outside the region are never passed here.
func ResolveIndent(region []string, indent string) []string {
	out := make([]string, len(region))
	for i, line := range region {
		if indent == DefaultIndent {
			out[i] = line
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, "\t"))
		out[i] = strings.Repeat(indent, n) + line[n:]
	}
	return out
}

func clone(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	return append([]string(nil), lines...)
}
