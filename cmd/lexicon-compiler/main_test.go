package main

import (
	"os"
	"path/filepath"
	"testing"

	"toxicity-coach/lexicon"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lemmas.tsv")
	require.NoError(t, os.WriteFile(input, []byte("lemma\tcategory\npig\tan\nmoron\tom\n"), 0o600))
	out := filepath.Join(dir, "models", "lexicon.json")

	tests := []struct {
		name    string
		args    []string
		code    int
		written bool
	}{
		{"Missing input flag", []string{"--out", out}, exitRuntime, false},
		{"Missing input file", []string{"--input", filepath.Join(dir, "nope.tsv"), "--out", out}, exitConfig, false},
		{"Too few lemmas", []string{"--input", input, "--out", out}, exitConfig, false},
		{"Forced", []string{"--input", input, "--out", out, "--force"}, exitOK, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			code, _ := run(tt.args)
			req.Equal(tt.code, code)
			_, err := os.Stat(out)
			req.Equal(tt.written, err == nil)
		})
	}

	lex, err := lexicon.Load(out)
	require.NoError(t, err)
	require.Equal(t, 2, lex.Len())
}
