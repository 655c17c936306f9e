package taxonomy

import (
	"campus-route-service/internal/domain"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

// Row kinds: a trigger is a word callers use, a keyword is a substring of
// location names.
const (
	KindTrigger = "trigger"
	KindKeyword = "keyword"
)

type taxonomyRow struct {
	Category string `csv:"category"`
	Kind     string `csv:"kind"`
	Term     string `csv:"term"`
}

// CSVTaxonomySource loads landmark categories from a CSV file with the
// header category,kind,term. Categories keep first-appearance order.
type CSVTaxonomySource struct {
	Path string
}

func NewCSVTaxonomySource(path string) *CSVTaxonomySource {
	return &CSVTaxonomySource{Path: path}
}

func (s *CSVTaxonomySource) LoadTaxonomy(ctx context.Context) ([]domain.LandmarkCategory, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: open %q: %w", s.Path, err)
	}
	defer f.Close()

	cats, err := ReadTaxonomy(f)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %q: %w", s.Path, err)
	}
	return cats, nil
}

func ReadTaxonomy(r io.Reader) ([]domain.LandmarkCategory, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: create decoder: %w", err)
	}

	var rows []taxonomyRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("read taxonomy: decode: %w", err)
	}

	order := []string{}
	byName := map[string]*domain.LandmarkCategory{}

	for i, row := range rows {
		name := strings.ToLower(strings.TrimSpace(row.Category))
		term := strings.ToLower(strings.TrimSpace(row.Term))
		if name == "" || term == "" {
			return nil, fmt.Errorf("read taxonomy: row %d: category and term are required", i+2)
		}

		c, ok := byName[name]
		if !ok {
			c = &domain.LandmarkCategory{Name: name}
			byName[name] = c
			order = append(order, name)
		}

		switch strings.ToLower(strings.TrimSpace(row.Kind)) {
		case KindTrigger:
			c.Triggers = append(c.Triggers, term)
		case KindKeyword:
			c.Keywords = append(c.Keywords, term)
		default:
			return nil, fmt.Errorf("read taxonomy: row %d: unknown kind %q", i+2, row.Kind)
		}
	}

	out := make([]domain.LandmarkCategory, 0, len(order))
	for _, name := range order {
		c := byName[name]
		if len(c.Triggers) == 0 || len(c.Keywords) == 0 {
			return nil, fmt.Errorf("read taxonomy: category %q needs at least one trigger and one keyword", name)
		}
		out = append(out, *c)
	}
	return out, nil
}
