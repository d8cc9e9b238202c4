//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and regenerates the dataset from the configured documents.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Check validates the generated dataset, including illustration files.
func Check() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "check", "--images")
}
