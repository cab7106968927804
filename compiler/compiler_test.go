package compiler

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toxicity-coach/domain"
	"toxicity-coach/errors"
	"toxicity-coach/lexicon"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestReadLemmas_Tsv_With_Header(t *testing.T) {
	req := require.New(t)
	src := "id\tpos\tcategory\tstereotype\tlemma\tlevel\n" +
		"EN1\tn\tan\tno\tPig\tconservative\n" +
		"EN2\tn\tis\tno\tpig\tconservative\n" +
		"EN3\tn\tcds\tno\tlow-life\tinclusive\n" +
		"EN4\tn\txx\tno\tunknown\tinclusive\n"

	terms, err := ReadLemmas(strings.NewReader(src))
	req.NoError(err)
	req.Equal(TermCategories{
		"pig":      {domain.AN, domain.IS},
		"low-life": {domain.CDS},
	}, terms)
}

func TestReadLemmas_Csv_Without_Header_Uses_Code_Scan(t *testing.T) {
	req := require.New(t)
	src := "scumbag,CDS,DMC\n" +
		"dimwit,DDP,note\n" +
		"flower,ok,fine\n"

	terms, err := ReadLemmas(strings.NewReader(src))
	req.NoError(err)
	req.Equal(TermCategories{
		"scumbag": {domain.CDS, domain.DMC},
		"dimwit":  {domain.DDP},
	}, terms)
}

func TestReadLemmas_Semicolon_Delimiter(t *testing.T) {
	req := require.New(t)
	src := "lemma;categories\nbrute;RE/DMC\ncreep;qas\n"

	terms, err := ReadLemmas(strings.NewReader(src))
	req.NoError(err)
	req.Equal(TermCategories{
		"brute": {domain.DMC, domain.RE},
		"creep": {domain.QAS},
	}, terms)
}

func TestReadLemmas_Empty_Source(t *testing.T) {
	req := require.New(t)
	_, err := ReadLemmas(strings.NewReader("  \n\n"))
	req.ErrorIs(err, errors.ErrEmptyLemmaSource)
}

func TestReadLemmaFile_Gzip_Without_Extension(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("lemma\tcategory\nthug\tre\n"))
	req.NoError(err)
	req.NoError(gz.Close())

	terms, err := ReadLemmaFile(writeFile(t, "lemmas.bin", buf.Bytes()))
	req.NoError(err)
	req.Equal(TermCategories{"thug": {domain.RE}}, terms)
}

func TestTermWeight(t *testing.T) {
	tests := []struct {
		term     string
		cats     []domain.Category
		expected float64
	}{
		{"pig", []domain.Category{domain.AN}, 1.0},
		{"thug", []domain.Category{domain.RE, domain.DMC}, 1.5},
		{"prick", []domain.Category{domain.ASM}, 2.0},
		{"retard", []domain.Category{domain.DDP}, 2.5},
		{"low-life", []domain.Category{domain.CDS, domain.QAS}, 3.5},
		{"son of a bitch", []domain.Category{domain.ASF, domain.CDS, domain.QAS}, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			require.Equal(t, tt.expected, TermWeight(tt.term, tt.cats))
		})
	}
}

func TestCompile_Refuses_Small_Sources(t *testing.T) {
	req := require.New(t)
	input := writeFile(t, "lemmas.tsv", []byte("lemma\tcategory\nthug\tre\n"))
	out := filepath.Join(t.TempDir(), "models", "hurtlex_model.json")

	report, err := Compile(Options{Input: input, Out: out})
	req.ErrorIs(err, errors.ErrTooFewTerms)
	req.Equal(1, report.Terms)
	req.False(report.Written)
	req.NoFileExists(out)

	report, err = Compile(Options{Input: input, Out: out, Force: true})
	req.NoError(err)
	req.True(report.Written)
	req.FileExists(out)
}

func TestCompile_Requires_Paths(t *testing.T) {
	req := require.New(t)
	_, err := Compile(Options{})
	req.Error(err)
}

// The compiled artifact loads back with exactly the weights and categories computed here.
func TestCompile_Round_Trip_Through_Lexicon(t *testing.T) {
	req := require.New(t)
	codes := []string{"PS", "AN", "RE", "ASF", "DDP", "IS", "QAS"}
	var src strings.Builder
	src.WriteString("id\tpos\tcategory\tstereotype\tlemma\tlevel\n")
	for i := 0; i < 120; i++ {
		lemma := fmt.Sprintf("term%c%c", 'a'+rune(i/26), 'a'+rune(i%26))
		if i%10 == 0 {
			lemma = fmt.Sprintf("bad %c%c", 'a'+rune(i/26), 'a'+rune(i%26))
		}
		fmt.Fprintf(&src, "EN%d\tn\t%s\tno\t%s\tconservative\n", i, strings.ToLower(codes[i%len(codes)]), lemma)
	}
	input := writeFile(t, "hurtlex_EN.tsv", []byte(src.String()))
	out := filepath.Join(t.TempDir(), "hurtlex_model.json")

	report, err := Compile(Options{Input: input, Out: out})
	req.NoError(err)
	req.Equal(120, report.Terms)

	terms, err := ReadLemmaFile(input)
	req.NoError(err)
	expected := BuildArtifact(terms)

	lex, err := lexicon.Load(out)
	req.NoError(err)
	req.Equal(len(expected.Weights), lex.Len())
	for term, weight := range expected.Weights {
		req.Equal(weight, lex.Weight(term), term)
		var cats []string
		for _, c := range lex.Categories(term) {
			cats = append(cats, string(c))
		}
		req.Equal(expected.Categories[term], cats, term)
	}
	req.Equal(2, lex.MaxPhraseLength())
}
