// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads the body paragraphs and embedded images of Office Open
// XML word-processing documents.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/pdiddy/eps-dataset/pkg/types"
)

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRel = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	documentPart = "word/document.xml"
	relsPart     = "word/_rels/document.xml.rels"
)

// ErrNotDocx is returned when a file is not a readable word-processing package.
var ErrNotDocx = errors.New("not a docx document")

// Document is an opened .docx file. Paragraphs are read at Open; image parts
// are read on demand until Close.
type Document struct {
	path       string
	zr         *zip.ReadCloser
	files      map[string]*zip.File
	rels       map[string]relationship
	paragraphs []types.Paragraph
}

type relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type relationships struct {
	Relationships []relationship `xml:"Relationship"`
}

// Open reads the document at path. The caller must Close it.
func Open(p string) (*Document, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("opening %s: %w", p, ErrNotDocx)
		}
		return nil, fmt.Errorf("opening %s: %w", p, err)
	}

	d := &Document{
		path:  p,
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
		rels:  map[string]relationship{},
	}
	for _, f := range zr.File {
		d.files[f.Name] = f
	}

	if err := d.load(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return d, nil
}

// Name returns the base name of the document file.
func (d *Document) Name() string {
	return filepath.Base(d.path)
}

// Paragraphs returns the body paragraphs in document order. Table cells and
// text boxes are not body paragraphs.
func (d *Document) Paragraphs() []types.Paragraph {
	return d.paragraphs
}

// Image returns the bytes of the embedded part referenced by ref.
func (d *Document) Image(ref string) ([]byte, error) {
	rel, ok := d.rels[ref]
	if !ok {
		return nil, fmt.Errorf("image %s: no such relationship in %s", ref, d.Name())
	}
	if strings.EqualFold(rel.TargetMode, "External") {
		return nil, fmt.Errorf("image %s: external target %q", ref, rel.Target)
	}
	name := partName(rel.Target)
	f, ok := d.files[name]
	if !ok {
		return nil, fmt.Errorf("image %s: part %s missing from %s", ref, name, d.Name())
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", ref, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Close releases the underlying archive.
func (d *Document) Close() error {
	return d.zr.Close()
}

func (d *Document) load() error {
	if f, ok := d.files[relsPart]; ok {
		var rs relationships
		if err := decodePart(f, &rs); err != nil {
			return fmt.Errorf("parsing %s: %w", relsPart, err)
		}
		for _, r := range rs.Relationships {
			d.rels[r.ID] = r
		}
	}

	f, ok := d.files[documentPart]
	if !ok {
		return fmt.Errorf("%s missing: %w", documentPart, ErrNotDocx)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	paragraphs, err := readParagraphs(rc)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", documentPart, err)
	}
	d.paragraphs = paragraphs
	return nil
}

func decodePart(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}

// partName resolves a relationship target of the main document part to a
// package part name.
func partName(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(path.Dir(documentPart), target)
}

func isW(n xml.Name, local string) bool {
	return n.Space == nsW && n.Local == local
}

// readParagraphs walks the document part and collects the text and image
// references of every direct w:p child of w:body. Only runs placed directly
// in the paragraph, or in one of its hyperlinks, contribute.
func readParagraphs(r io.Reader) ([]types.Paragraph, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []types.Paragraph
		stack      []xml.Name
		text       strings.Builder
		images     []string
		inPara     bool
		// Stack depths at which the open paragraph, run and w:t were pushed.
		pDepth, runDepth, tDepth int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			depth := len(stack)

			switch {
			case !inPara:
				if isW(t.Name, "p") && depth >= 2 && isW(stack[depth-2], "body") {
					inPara = true
					pDepth = depth
					text.Reset()
					images = nil
				}
			case runDepth == 0:
				direct := depth == pDepth+1
				linked := depth == pDepth+2 && isW(stack[pDepth], "hyperlink")
				if isW(t.Name, "r") && (direct || linked) {
					runDepth = depth
				}
			default:
				if depth == runDepth+1 && t.Name.Space == nsW {
					switch t.Name.Local {
					case "t":
						tDepth = depth
					case "tab", "ptab":
						text.WriteByte('\t')
					case "br":
						if breakType(t) == "" || breakType(t) == "textWrapping" {
							text.WriteByte('\n')
						}
					case "cr":
						text.WriteByte('\n')
					case "noBreakHyphen":
						text.WriteByte('-')
					}
				}
				if t.Name.Space == nsA && t.Name.Local == "blip" {
					for _, a := range t.Attr {
						if a.Name.Space == nsRel && a.Name.Local == "embed" && a.Value != "" {
							images = append(images, a.Value)
						}
					}
				}
			}

		case xml.CharData:
			if tDepth != 0 && len(stack) == tDepth {
				text.Write(t)
			}

		case xml.EndElement:
			depth := len(stack)
			switch depth {
			case tDepth:
				tDepth = 0
			case runDepth:
				runDepth = 0
			case pDepth:
				if inPara {
					paragraphs = append(paragraphs, types.Paragraph{Text: text.String(), Images: images})
					inPara = false
					pDepth = 0
				}
			}
			stack = stack[:depth-1]
		}
	}

	return paragraphs, nil
}

func breakType(t xml.StartElement) string {
	for _, a := range t.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}
