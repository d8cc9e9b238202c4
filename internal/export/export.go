// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the dataset JSON and the extracted illustrations.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pdiddy/eps-dataset/internal/parse"
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// Marshal encodes ds as 2-space indented JSON in which every non-ASCII
// character is written as a \u escape. The output has no trailing newline.
func Marshal(ds types.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites every rune above U+007F as \uXXXX, using
// surrogate pairs outside the Basic Multilingual Plane. Non-ASCII bytes only
// occur inside JSON strings, so the result is equivalent JSON.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}

// WriteDataset writes the same encoding of ds to every path, creating
// parent directories as needed.
func WriteDataset(ds types.Dataset, paths ...string) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", p, err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
	}
	return nil
}

// WriteImages writes each image to dir as <Code>.jpg, replacing existing
// files, and returns the number written.
func WriteImages(dir string, images []parse.ExtractedImage) (int, error) {
	if len(images) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating images directory: %w", err)
	}
	for i, img := range images {
		p := filepath.Join(dir, img.Code+".jpg")
		if err := os.WriteFile(p, img.JPEG, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", p, err)
		}
	}
	return len(images), nil
}
