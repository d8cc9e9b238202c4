// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse extracts sessions and exercises from the paragraphs of
// loosely structured source documents.
//
// Documents are scanned line by line. A "SESSION <n> : <title>" line opens a
// session, an "S<n>-<i> : <title>" line opens an exercise inside it, and the
// "Muscles", "Niveau", "Materiel" and "Points" lines that follow fill the open
// exercise. Every other line is ignored. The first image found after an
// exercise header becomes that exercise's illustration.
package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/eps-dataset/internal/complete"
	"github.com/pdiddy/eps-dataset/internal/imaging"
	"github.com/pdiddy/eps-dataset/internal/overrides"
	"github.com/pdiddy/eps-dataset/internal/textnorm"
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// Document is a source the parser can read. *docx.Document implements it.
type Document interface {
	// Name identifies the document in the dataset metadata.
	Name() string

	// Paragraphs returns the document paragraphs in reading order.
	Paragraphs() []types.Paragraph

	// Image returns the raw bytes of an embedded image reference.
	Image(ref string) ([]byte, error)
}

// Config holds the collaborators of a Parser. Zero values are usable.
type Config struct {
	// Logger receives debug traces of recognized headers and dropped images.
	Logger *zap.Logger

	// Overrides are applied to the parsed exercises before completion.
	Overrides overrides.Set
}

// ExtractedImage is an illustration normalized to JPEG, waiting to be
// written as <Code>.jpg.
type ExtractedImage struct {
	Code string
	JPEG []byte
}

// Result holds the outcome of a parse run.
type Result struct {
	Dataset types.Dataset
	Images  []ExtractedImage
}

// SessionCount returns the number of sessions found.
func (r Result) SessionCount() int { return len(r.Dataset.Sessions) }

// ExerciseCount returns the number of exercises found.
func (r Result) ExerciseCount() int { return r.Dataset.ExerciseCount() }

// ImageCount returns the number of illustrations extracted.
func (r Result) ImageCount() int { return len(r.Images) }

var (
	// sessionRe matches: SESSION 1 : Gainage & posture
	sessionRe = regexp.MustCompile(`(?i)^[\s\p{Zs}]*SESSION[\s\p{Zs}]+(\d+)[\s\p{Zs}]*:[\s\p{Zs}]*(.+)$`)

	// exerciseRe matches: S1-01 : Planche coudes (also "s1 – 01", "S1 — 1")
	exerciseRe = regexp.MustCompile(`(?i)^[\s\p{Zs}]*(S\d+[\s\p{Zs}]*[-–—][\s\p{Zs}]*\d+)[\s\p{Zs}]*:[\s\p{Zs}]*(.+)$`)
)

// sessionBuilder accumulates one session while documents are scanned.
// Exercises are held by pointer so the parser state can keep addressing
// them while more are appended.
type sessionBuilder struct {
	num       int
	title     string
	exercises []*types.Exercise
}

// state is the parser context carried from line to line.
type state struct {
	session       *sessionBuilder
	exercise      *types.Exercise
	awaitingImage *types.Exercise
}

// Parser extracts a dataset from a sequence of documents. A Parser is used
// for a single Parse call.
type Parser struct {
	log       *zap.Logger
	overrides overrides.Set
	normalize func([]byte) ([]byte, error)

	sessions map[int]*sessionBuilder
	images   []ExtractedImage
}

// New returns a Parser configured by cfg.
func New(cfg Config) *Parser {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		log:       log,
		overrides: cfg.Overrides,
		normalize: imaging.Normalize,
		sessions:  map[int]*sessionBuilder{},
	}
}

// Parse reads every document in order and returns the completed dataset.
// Unrecognized lines are skipped. An image that cannot be read or decoded
// aborts the run.
func (p *Parser) Parse(docs []Document) (Result, error) {
	var st state
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name())
		var err error
		st, err = p.document(st, doc)
		if err != nil {
			return Result{}, fmt.Errorf("parsing %s: %w", doc.Name(), err)
		}
	}

	ds := p.finalize()
	ds.Meta = types.Meta{IsMock: false, SourceDocs: names}
	return Result{Dataset: ds, Images: p.images}, nil
}

// document runs every paragraph of doc through the state machine. Parser
// state carries over from the previous document.
func (p *Parser) document(st state, doc Document) (state, error) {
	for i, para := range doc.Paragraphs() {
		for _, line := range textnorm.Lines(para.Text) {
			st = p.step(st, line)
		}
		var err error
		st, err = p.attachImage(st, doc, para)
		if err != nil {
			return st, fmt.Errorf("paragraph %d: %w", i+1, err)
		}
	}
	return st, nil
}

// step applies one line to the parser state.
func (p *Parser) step(st state, line string) state {
	if m := sessionRe.FindStringSubmatch(line); m != nil {
		num, err := strconv.Atoi(m[1])
		if err != nil {
			return st
		}
		s := p.session(num, strings.TrimSpace(m[2]))
		p.log.Debug("session header", zap.Int("num", num), zap.String("title", s.title))
		return state{session: s}
	}

	if m := exerciseRe.FindStringSubmatch(line); m != nil {
		code := textnorm.NormalizeCode(m[1])
		if st.session == nil {
			num, err := sessionNum(code)
			if err != nil {
				return st
			}
			st.session = p.session(num, fmt.Sprintf("Session %d", num))
			p.log.Debug("exercise before session header", zap.String("code", code), zap.Int("session", num))
		}
		ex := types.NewExercise(code, strings.TrimSpace(m[2]))
		st.session.exercises = append(st.session.exercises, &ex)
		p.log.Debug("exercise header", zap.String("code", code), zap.String("title", ex.Title))
		st.exercise = &ex
		st.awaitingImage = &ex
		return st
	}

	if st.exercise != nil {
		setField(st.exercise, line)
	}
	return st
}

// setField routes a descriptive line to the matching exercise field.
func setField(ex *types.Exercise, line string) {
	folded := textnorm.Fold(line)
	value := textnorm.ValueAfterColon(line)
	switch {
	case strings.HasPrefix(folded, "muscles"):
		ex.Muscles = value
	case strings.HasPrefix(folded, "niveau"):
		ex.Level = orDefault(value, types.DefaultLevel)
	case strings.HasPrefix(folded, "materiel"):
		ex.Equipment = orDefault(value, types.DefaultEquipment)
	case strings.HasPrefix(folded, "points"):
		ex.KeyPoints = textnorm.SplitPoints(value)
	}
}

// attachImage saves the first image of para as the illustration of the
// exercise awaiting one. Images with no pending exercise are dropped.
func (p *Parser) attachImage(st state, doc Document, para types.Paragraph) (state, error) {
	if len(para.Images) == 0 {
		return st, nil
	}
	if st.awaitingImage == nil {
		p.log.Debug("image without pending exercise dropped", zap.Int("count", len(para.Images)))
		return st, nil
	}

	ref := para.Images[0]
	blob, err := doc.Image(ref)
	if err != nil {
		return st, err
	}
	jpg, err := p.normalize(blob)
	if err != nil {
		return st, fmt.Errorf("image %s for %s: %w", ref, st.awaitingImage.Code, err)
	}

	code := st.awaitingImage.Code
	p.images = append(p.images, ExtractedImage{Code: code, JPEG: jpg})
	p.log.Debug("image attached", zap.String("code", code), zap.String("ref", ref))
	st.awaitingImage = nil
	return st, nil
}

// session resolves the session numbered num, creating it with title when
// it has not been seen yet. An existing session keeps its first title.
func (p *Parser) session(num int, title string) *sessionBuilder {
	if s, ok := p.sessions[num]; ok {
		return s
	}
	s := &sessionBuilder{num: num, title: title}
	p.sessions[num] = s
	return s
}

// finalize orders the sessions, applies overrides and completes every
// exercise.
func (p *Parser) finalize() types.Dataset {
	builders := make([]*sessionBuilder, 0, len(p.sessions))
	for _, s := range p.sessions {
		builders = append(builders, s)
	}
	sort.Slice(builders, func(i, j int) bool { return builders[i].num < builders[j].num })

	ds := types.Dataset{Sessions: make([]types.Session, 0, len(builders))}
	for _, b := range builders {
		s := types.NewSession(b.num, b.title)
		for _, ex := range b.exercises {
			if ex.KeyPoints == nil {
				ex.KeyPoints = []string{}
			}
			s.Exercises = append(s.Exercises, *ex)
		}
		ds.Sessions = append(ds.Sessions, s)
	}

	p.overrides.Apply(&ds, p.log)
	complete.Dataset(&ds)
	return ds
}

// sessionNum reads the session number from a canonical code ("S3-01" is 3).
func sessionNum(code string) (int, error) {
	prefix, _, _ := strings.Cut(strings.TrimPrefix(code, "S"), "-")
	return strconv.Atoi(prefix)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
