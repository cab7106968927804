// Package compiler turns a tabular lemma source (HurtLex style) into the JSON artifact
// consumed by the lexicon package.
package compiler

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"toxicity-coach/domain"
	"toxicity-coach/errors"

	"github.com/gabriel-vasile/mimetype"
)

const sniffSize = 4096

var (
	upperCode      = regexp.MustCompile(`\b([A-Z]{2,3})\b`)
	hasLetter      = regexp.MustCompile(`[A-Za-z]`)
	categoryFields = regexp.MustCompile(`[\s,;/]+`)
	headerNames    = []string{"lemma", "lexeme", "category", "categories", "pos", "stereotype", "id"}
	delimiters     = []rune{'\t', ',', ';'}
)

// TermCategories maps a lowercase lemma to its sorted category codes.
type TermCategories map[string][]domain.Category

// ReadLemmaFile parses a .tsv/.csv lemma file, optionally gzip compressed.
func ReadLemmaFile(path string) (TermCategories, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lemma source: %w", err)
	}
	defer f.Close()

	r, err := decompress(bufio.NewReader(f), path)
	if err != nil {
		return nil, err
	}
	return ReadLemmas(r)
}

// decompress sniffs the content type so gzip sources work whatever their file name.
func decompress(r *bufio.Reader, path string) (io.Reader, error) {
	head, err := r.Peek(sniffSize)
	if err != nil && !goerrors.Is(err, io.EOF) && !goerrors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("read lemma source: %w", err)
	}
	if !mimetype.Detect(head).Is("application/gzip") && !strings.HasSuffix(path, ".gz") {
		return r, nil
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip lemma source: %w", err)
	}
	return gz, nil
}

// ReadLemmas extracts (lemma, categories) pairs from delimited text.
// The delimiter is detected among tab, comma and semicolon and the header row is optional.
func ReadLemmas(r io.Reader) (TermCategories, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	sample, err := br.Peek(sniffSize)
	if err != nil && !goerrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read lemma source: %w", err)
	}
	if len(strings.TrimSpace(string(sample))) == 0 {
		return nil, errors.ErrEmptyLemmaSource
	}

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(string(sample))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if goerrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse lemma source: %w", err)
		}
		if !isBlank(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, errors.ErrEmptyLemmaSource
	}

	lemmaIdx, catsIdx := -1, -1
	header := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(c))
	}
	if isHeader(header) {
		rows = rows[1:]
		for i, name := range header {
			switch name {
			case "lemma", "lexeme":
				lemmaIdx = i
			case "category", "categories":
				catsIdx = i
			}
		}
	}

	sets := make(map[string]domain.CategorySet)
	for _, row := range rows {
		lemma := extractLemma(row, lemmaIdx)
		if lemma == "" {
			continue
		}
		cats := extractCategories(row, catsIdx)
		if len(cats) == 0 {
			continue
		}
		if sets[lemma] == nil {
			sets[lemma] = domain.NewCategorySet()
		}
		for _, c := range cats {
			sets[lemma][c] = struct{}{}
		}
	}

	terms := make(TermCategories, len(sets))
	for lemma, set := range sets {
		codes := make([]domain.Category, 0, len(set))
		for c := range set {
			codes = append(codes, c)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		terms[lemma] = codes
	}
	return terms, nil
}

func extractLemma(row []string, lemmaIdx int) string {
	if lemmaIdx >= 0 && lemmaIdx < len(row) && strings.TrimSpace(row[lemmaIdx]) != "" {
		return strings.ToLower(strings.TrimSpace(row[lemmaIdx]))
	}
	for _, c := range row {
		if hasLetter.MatchString(c) {
			return strings.ToLower(strings.TrimSpace(c))
		}
	}
	return ""
}

// extractCategories reads the category column, falling back to a scan of the whole row
// for 2-3 letter uppercase codes of the known taxonomy.
func extractCategories(row []string, catsIdx int) []domain.Category {
	var cats []domain.Category
	if catsIdx >= 0 && catsIdx < len(row) {
		for _, tok := range categoryFields.Split(strings.TrimSpace(row[catsIdx]), -1) {
			c := domain.NormalizeCategory(tok)
			if domain.KnownCategories.Contains(c) {
				cats = append(cats, c)
			}
		}
	}
	if len(cats) > 0 {
		return cats
	}
	for _, m := range upperCode.FindAllStringSubmatch(strings.Join(row, " "), -1) {
		c := domain.Category(m[1])
		if domain.KnownCategories.Contains(c) {
			cats = append(cats, c)
		}
	}
	return cats
}

func isHeader(cells []string) bool {
	for _, c := range cells {
		for _, name := range headerNames {
			if c == name {
				return true
			}
		}
	}
	return false
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// sniffDelimiter picks the candidate appearing the same non-zero number of times on every
// complete sample line, then falls back to the first candidate present at all.
func sniffDelimiter(sample string) rune {
	lines := strings.Split(sample, "\n")
	if len(lines) > 1 && !strings.HasSuffix(sample, "\n") {
		lines = lines[:len(lines)-1]
	}
	for _, d := range delimiters {
		if consistent(lines, d) {
			return d
		}
	}
	for _, d := range delimiters[:2] {
		if strings.ContainsRune(sample, d) {
			return d
		}
	}
	return ';'
}

func consistent(lines []string, d rune) bool {
	expected := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := strings.Count(line, string(d))
		if n == 0 || (expected >= 0 && n != expected) {
			return false
		}
		expected = n
	}
	return expected > 0
}
