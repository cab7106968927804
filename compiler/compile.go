package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"toxicity-coach/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Options struct {
	Input string `validate:"required"`
	Out   string `validate:"required"`
	// Force writes the artifact even when fewer than MinTermsToWrite lemmas were parsed.
	Force bool
}

type Report struct {
	Terms         int
	TopCategories []CategoryCount
	Out           string
	Written       bool
}

// Compile reads the lemma source, builds the artifact and writes it to opts.Out.
// The report is filled even when the artifact is refused for being too small.
func Compile(opts Options) (Report, error) {
	if err := validate.Struct(opts); err != nil {
		return Report{}, err
	}
	terms, err := ReadLemmaFile(opts.Input)
	if err != nil {
		return Report{}, err
	}
	report := Report{
		Terms:         len(terms),
		TopCategories: TopCategories(terms, 8),
		Out:           opts.Out,
	}
	if len(terms) < MinTermsToWrite && !opts.Force {
		return report, fmt.Errorf("%w: parsed %d (<%d); pass --force for a tiny subset or check the source path/format",
			errors.ErrTooFewTerms, len(terms), MinTermsToWrite)
	}
	if err := WriteArtifact(opts.Out, BuildArtifact(terms)); err != nil {
		return report, err
	}
	report.Written = true
	return report, nil
}

// WriteArtifact writes the artifact as compact UTF-8 JSON, creating parent directories.
func WriteArtifact(path string, a Artifact) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create artifact directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
