package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

type locationRow struct {
	Name string `csv:"name"`
}

// LoadLocationNames reads a one-column CSV (header "name") listing the
// campus places a remote matrix source should cover, in matrix order.
func LoadLocationNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load location names: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadLocationNames(f)
}

func ReadLocationNames(r io.Reader) ([]string, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read location names: create decoder: %w", err)
	}

	var rows []locationRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("read location names: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	names := make([]string, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("read location names: row %d: name cannot be empty", i+2)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
