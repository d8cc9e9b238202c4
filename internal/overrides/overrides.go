// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package overrides loads editorial corrections from a YAML file and applies
// them to exercise records before completion.
//
// The file maps exercise codes to the fields to replace:
//
//	S1-09:
//	  safety:
//	    - Deconseille en cas de douleur femoro-patellaire
//	  dosage: 3 a 4 series de 8 a 12 repetitions
package overrides

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/eps-dataset/internal/textnorm"
	"github.com/pdiddy/eps-dataset/pkg/types"
)

// Override holds replacement values for one exercise. Empty fields leave the
// record untouched.
type Override struct {
	Title     string   `yaml:"title,omitempty"`
	Level     string   `yaml:"level,omitempty"`
	Equipment string   `yaml:"equipment,omitempty"`
	Muscles   string   `yaml:"muscles,omitempty"`
	Objective string   `yaml:"objective,omitempty"`
	Anatomy   string   `yaml:"anatomy,omitempty"`
	KeyPoints []string `yaml:"key_points,omitempty"`
	Safety    []string `yaml:"safety,omitempty"`
	Regress   string   `yaml:"regress,omitempty"`
	Progress  string   `yaml:"progress,omitempty"`
	Dosage    string   `yaml:"dosage,omitempty"`
}

// Set maps canonical exercise codes to overrides.
type Set map[string]Override

// Load reads the override file at path. An empty path or a missing file
// yields an empty set. A malformed file is an error.
func Load(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("reading overrides %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an override document. Codes are normalized so that
// "s1 - 09" and "S1-09" address the same exercise.
func Parse(data []byte) (Set, error) {
	var raw map[string]Override
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing overrides: %w", err)
	}
	set := make(Set, len(raw))
	for code, o := range raw {
		set[textnorm.NormalizeCode(code)] = o
	}
	return set, nil
}

// Apply replaces the overridden fields of every matching exercise in ds and
// returns the number of exercises changed. Codes with no matching exercise
// are logged and ignored.
func (s Set) Apply(ds *types.Dataset, log *zap.Logger) int {
	if len(s) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(s))
	applied := 0
	for i := range ds.Sessions {
		for j := range ds.Sessions[i].Exercises {
			ex := &ds.Sessions[i].Exercises[j]
			o, ok := s[ex.Code]
			if !ok {
				continue
			}
			o.apply(ex)
			seen[ex.Code] = true
			applied++
		}
	}
	for code := range s {
		if !seen[code] {
			log.Debug("override for unknown exercise", zap.String("code", code))
		}
	}
	log.Debug("overrides applied", zap.Int("exercises", applied), zap.Int("unmatched", len(s)-len(seen)))
	return applied
}

func (o Override) apply(ex *types.Exercise) {
	setString(&ex.Title, o.Title)
	setString(&ex.Level, o.Level)
	setString(&ex.Equipment, o.Equipment)
	setString(&ex.Muscles, o.Muscles)
	setString(&ex.Objective, o.Objective)
	setString(&ex.Anatomy, o.Anatomy)
	setString(&ex.Regress, o.Regress)
	setString(&ex.Progress, o.Progress)
	setString(&ex.Dosage, o.Dosage)
	if len(o.KeyPoints) > 0 {
		ex.KeyPoints = append([]string(nil), o.KeyPoints...)
	}
	if len(o.Safety) > 0 {
		ex.Safety = append([]string(nil), o.Safety...)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
