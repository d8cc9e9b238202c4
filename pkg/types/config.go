// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// OutputConfig holds the locations the dataset is written to.
type OutputConfig struct {
	// Src is the JSON copy bundled with the application source
	// (default "src/data/exercises.json").
	Src string `json:"src" yaml:"src" mapstructure:"src"`

	// Public is the JSON copy served as a static file
	// (default "public/data/exercises.json").
	Public string `json:"public" yaml:"public" mapstructure:"public"`

	// Images is the directory extracted illustrations are written to
	// (default "public/images").
	Images string `json:"images" yaml:"images" mapstructure:"images"`
}

// ExtractConfig holds settings for one extraction run.
type ExtractConfig struct {
	// Root is the project directory relative paths are resolved against.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// Docs are the documents read when no paths are given on the command line.
	Docs []string `json:"docs" yaml:"docs" mapstructure:"docs"`

	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`

	// Overrides is an optional YAML file of editorial field overrides keyed
	// by exercise code. Empty disables overrides.
	Overrides string `json:"overrides,omitempty" yaml:"overrides,omitempty" mapstructure:"overrides"`
}

// Resolve returns p joined to Root unless p is empty or absolute.
func (c ExtractConfig) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// OutputPaths returns the resolved JSON output locations, source copy first.
func (c ExtractConfig) OutputPaths() []string {
	return []string{c.Resolve(c.Output.Src), c.Resolve(c.Output.Public)}
}
