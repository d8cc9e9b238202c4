// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/eps-dataset/internal/complete"
	"github.com/pdiddy/eps-dataset/internal/docx"
	"github.com/pdiddy/eps-dataset/internal/export"
	"github.com/pdiddy/eps-dataset/internal/mock"
	"github.com/pdiddy/eps-dataset/internal/overrides"
	"github.com/pdiddy/eps-dataset/internal/parse"
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// runExtract builds the dataset from the documents in args (or cfg.Docs when
// args is empty) and writes it with its illustrations. Nothing is written
// when any document, image or override file fails.
func runExtract(cfg types.ExtractConfig, args []string, w io.Writer, log *zap.Logger) error {
	set, err := overrides.Load(cfg.Resolve(cfg.Overrides))
	if err != nil {
		return err
	}

	candidates := args
	if len(candidates) == 0 {
		candidates = make([]string, 0, len(cfg.Docs))
		for _, d := range cfg.Docs {
			candidates = append(candidates, cfg.Resolve(d))
		}
	}
	paths := existing(candidates, log)

	var res parse.Result
	if len(paths) == 0 {
		ds := mock.Build()
		n := set.Apply(&ds, log)
		complete.Dataset(&ds)
		res = parse.Result{Dataset: ds}
		log.Debug("demonstration dataset built", zap.Int("overridden", n))
		fmt.Fprintln(w, "Aucun DOCX trouve. Dataset de demo genere.")
	} else {
		res, err = parseDocuments(paths, set, log)
		if err != nil {
			return err
		}
	}

	if _, err := export.WriteImages(cfg.Resolve(cfg.Output.Images), res.Images); err != nil {
		return err
	}
	if err := export.WriteDataset(res.Dataset, cfg.OutputPaths()...); err != nil {
		return err
	}

	fmt.Fprintf(w, "Sessions: %d\n", res.SessionCount())
	fmt.Fprintf(w, "Exercices: %d\n", res.ExerciseCount())
	fmt.Fprintf(w, "Images extraites: %d\n", res.ImageCount())
	return nil
}

// parseDocuments opens every path and runs them through one parser so the
// session state carries across documents.
func parseDocuments(paths []string, set overrides.Set, log *zap.Logger) (parse.Result, error) {
	docs := make([]parse.Document, 0, len(paths))
	for _, p := range paths {
		d, err := docx.Open(p)
		if err != nil {
			return parse.Result{}, err
		}
		defer d.Close()
		docs = append(docs, d)
	}

	return parse.New(parse.Config{Logger: log, Overrides: set}).Parse(docs)
}

// existing keeps the paths that name a file, in order.
func existing(paths []string, log *zap.Logger) []string {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug("document not found", zap.String("path", p))
		case err != nil:
			log.Warn("document not readable", zap.String("path", p), zap.Error(err))
		case info.IsDir():
			log.Warn("document is a directory", zap.String("path", p))
		default:
			out = append(out, p)
		}
	}
	return out
}
