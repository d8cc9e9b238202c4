// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check validates a generated dataset before it is shipped to the
// front-end application.
package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/eps-dataset/pkg/types"
)

// Severity ranks an issue.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Issue is one problem found in a dataset.
type Issue struct {
	Severity Severity
	Where    string
	Message  string
}

// Report collects the issues of one check run.
type Report struct {
	Sessions  int
	Exercises int
	Issues    []Issue
}

// Errors returns the number of error issues.
func (r Report) Errors() int { return r.count(Error) }

// Warnings returns the number of warning issues.
func (r Report) Warnings() int { return r.count(Warning) }

// OK reports whether the dataset has no errors. Warnings do not fail a check.
func (r Report) OK() bool { return r.Errors() == 0 }

func (r Report) count(s Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == s {
			n++
		}
	}
	return n
}

// Print writes one line per issue followed by a summary line.
func (r Report) Print(w io.Writer) {
	for _, is := range r.Issues {
		fmt.Fprintf(w, "%-8s %s: %s\n", is.Severity.String()+":", is.Where, is.Message)
	}
	fmt.Fprintf(w, "\nCheck summary: %d sessions, %d exercises, %d errors, %d warnings\n",
		r.Sessions, r.Exercises, r.Errors(), r.Warnings())
}

func (r *Report) add(sev Severity, where, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: sev, Where: where, Message: fmt.Sprintf(format, args...)})
}

// Options tunes a check run.
type Options struct {
	// ImagesDir, when set, is searched for the <CODE>.jpg illustration of
	// every exercise. A missing file is a warning.
	ImagesDir string
}

var codeRe = regexp.MustCompile(`^S(\d+)-\d+$`)

// Dataset checks the structure of ds.
func Dataset(ds types.Dataset, opts Options) Report {
	r := Report{Sessions: len(ds.Sessions), Exercises: ds.ExerciseCount()}

	if len(ds.Sessions) == 0 {
		r.add(Error, "dataset", "no sessions")
	}
	if ds.Meta.IsMock && ds.Meta.Warning == "" {
		r.add(Warning, "meta", "demonstration dataset without warning")
	}

	seenNums := map[int]bool{}
	seenCodes := map[string]string{}
	prev := 0
	for _, s := range ds.Sessions {
		where := fmt.Sprintf("session %d", s.Num)
		switch {
		case s.Num < 1:
			r.add(Error, where, "number must be at least 1")
		case seenNums[s.Num]:
			r.add(Error, where, "duplicate session number")
		case s.Num < prev:
			r.add(Error, where, "sessions not in ascending order")
		}
		seenNums[s.Num] = true
		prev = s.Num

		if strings.TrimSpace(s.Title) == "" {
			r.add(Error, where, "empty title")
		}
		if s.Subtitle == "" {
			r.add(Error, where, "empty subtitle")
		}

		for _, ex := range s.Exercises {
			exercise(&r, s.Num, ex, seenCodes, opts)
		}
	}
	return r
}

func exercise(r *Report, num int, ex types.Exercise, seen map[string]string, opts Options) {
	where := ex.Code
	if where == "" {
		where = fmt.Sprintf("session %d exercise %q", num, ex.Title)
	}

	m := codeRe.FindStringSubmatch(ex.Code)
	if m == nil {
		r.add(Error, where, "code does not match S<n>-<i>")
	} else if n, _ := strconv.Atoi(m[1]); n != num {
		r.add(Error, where, "code belongs to session %d", n)
	}
	if prev, ok := seen[ex.Code]; ok && ex.Code != "" {
		r.add(Error, where, "duplicate code (first in %s)", prev)
	}
	seen[ex.Code] = fmt.Sprintf("session %d", num)

	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"title", ex.Title == ""},
		{"level", ex.Level == ""},
		{"equipment", ex.Equipment == ""},
		{"muscles", ex.Muscles == ""},
		{"objective", ex.Objective == ""},
		{"anatomy", ex.Anatomy == ""},
		{"key_points", len(ex.KeyPoints) == 0},
		{"safety", len(ex.Safety) == 0},
		{"regress", ex.Regress == ""},
		{"progress", ex.Progress == ""},
		{"dosage", ex.Dosage == ""},
		{"image", ex.Image == ""},
	} {
		if f.empty {
			r.add(Error, where, "empty %s", f.name)
		}
	}

	if opts.ImagesDir != "" && ex.Code != "" {
		p := filepath.Join(opts.ImagesDir, ex.Code+".jpg")
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			r.add(Warning, where, "no illustration at %s", p)
		}
	}
}

// File reads and checks a dataset JSON file. Beyond the structural checks of
// Dataset, every byte of the file must be ASCII.
func File(path string, opts Options) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading dataset: %w", err)
	}

	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return Report{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	r := Dataset(ds, opts)
	if off := firstNonASCII(data); off >= 0 {
		line := 1 + strings.Count(string(data[:off]), "\n")
		r.add(Error, filepath.Base(path), "non-ASCII byte 0x%02x at line %d", data[off], line)
	}
	return r, nil
}

func firstNonASCII(data []byte) int {
	for i, b := range data {
		if b >= 0x80 {
			return i
		}
	}
	return -1
}
