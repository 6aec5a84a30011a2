// Package dataset loads destination records from CSV, TSV and XLSX files.
package dataset

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/getaway-cli/internal/model"
)

var (
	// ErrNotFound is returned when the dataset path does not resolve.
	ErrNotFound = eris.New("dataset not found")
	// ErrRead is returned for any other read or parse failure.
	ErrRead = eris.New("dataset read error")
)

// Options configures a Loader.
type Options struct {
	Path   string
	Sheet  string // xlsx only; empty selects the first sheet
	Schema Schema // nil uses DefaultSchema
}

// Loader reads the dataset from disk. It keeps no state between loads, so
// every call sees the file as it is at that moment.
type Loader struct {
	opts Options
}

// NewLoader creates a Loader.
func NewLoader(opts Options) *Loader {
	if opts.Schema == nil {
		opts.Schema = DefaultSchema
	}
	return &Loader{opts: opts}
}

// Path returns the configured dataset path.
func (l *Loader) Path() string {
	return l.opts.Path
}

// Load reads and parses every record in the dataset.
func (l *Loader) Load(ctx context.Context) ([]model.Place, error) {
	path := l.opts.Path
	log := zap.L().With(zap.String("component", "dataset"), zap.String("path", path))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrNotFound, "dataset: %s", path)
		}
		return nil, eris.Wrapf(ErrRead, "dataset: stat %s: %v", path, err)
	}
	if info.IsDir() {
		return nil, eris.Wrapf(ErrRead, "dataset: %s is a directory", path)
	}

	var places []model.Place
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		places, err = l.loadXLSX(path)
	case ".tsv", ".tab":
		places, err = l.loadDelimited(ctx, path, '\t')
	default:
		places, err = l.loadDelimited(ctx, path, ',')
	}
	if err != nil {
		return nil, eris.Wrapf(ErrRead, "dataset: %s: %v", path, err)
	}

	log.Debug("dataset loaded", zap.Int("records", len(places)))
	return places, nil
}

func (l *Loader) loadDelimited(ctx context.Context, path string, delimiter rune) ([]model.Place, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "open")
	}
	defer f.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rowCh, errCh := streamCSV(ctx, f, delimiter)

	var (
		cols   Columns
		places []model.Place
	)
	for row := range rowCh {
		if cols == nil {
			cols, err = l.opts.Schema.Resolve(row.fields)
			if err != nil {
				return nil, err
			}
			continue
		}
		if blankRow(row.fields) {
			continue
		}
		p, err := parsePlace(row.fields, cols)
		if err != nil {
			return nil, eris.Wrapf(err, "line %d", row.line)
		}
		places = append(places, p)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, eris.New("no header row")
	}
	return places, nil
}

func (l *Loader) loadXLSX(path string) ([]model.Place, error) {
	rows, err := readXLSX(path, l.opts.Sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.New("no header row")
	}

	cols, err := l.opts.Schema.Resolve(rows[0])
	if err != nil {
		return nil, err
	}

	places := make([]model.Place, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		p, err := parsePlace(row, cols)
		if err != nil {
			return nil, eris.Wrapf(err, "row %d", i+2)
		}
		places = append(places, p)
	}
	return places, nil
}

func parsePlace(row []string, cols Columns) (model.Place, error) {
	rating, err := parseNonNegative(cols.Get(row, FieldRating))
	if err != nil {
		return model.Place{}, eris.Wrap(err, "rating")
	}
	popularity, err := parseNonNegative(cols.Get(row, FieldPopularity))
	if err != nil {
		return model.Place{}, eris.Wrap(err, "popularity")
	}

	return model.Place{
		City:       cols.Get(row, FieldCity),
		State:      cols.Get(row, FieldState),
		Name:       cols.Get(row, FieldName),
		Rating:     rating,
		Popularity: popularity,
	}, nil
}

func parseNonNegative(s string) (float64, error) {
	if s == "" {
		return 0, eris.New("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, eris.Errorf("value %q must be a finite number >= 0", s)
	}
	return v, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
