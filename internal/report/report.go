// Package report writes ranking results to timestamped plain-text files.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/getaway-cli/internal/model"
)

const (
	width = 78

	fileTimeLayout      = "20060102_150405"
	generatedTimeLayout = "Monday, January 02, 2006 at 03:04:05 PM"
)

// Writer writes one report file per successful ranking run.
type Writer struct {
	dir   string
	clock clockwork.Clock
}

// NewWriter creates a Writer for dir. A nil clock uses the real clock.
func NewWriter(dir string, clock clockwork.Clock) *Writer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Writer{dir: dir, clock: clock}
}

// Filename returns the report file name for a source city at time t.
func Filename(source string, t time.Time) string {
	return fmt.Sprintf("%s_weekend_getaways_%s.txt",
		strings.ReplaceAll(source, " ", "_"), t.Format(fileTimeLayout))
}

// Write renders rs into a new file under the writer's directory and returns
// its path. Empty result sets are not written.
func (w *Writer) Write(rs *model.ResultSet) (string, error) {
	if rs.Empty() {
		return "", eris.New("report: nothing to write")
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "report: create output dir %s", w.dir)
	}

	now := w.clock.Now()
	path := filepath.Join(w.dir, Filename(rs.Source, now))

	f, err := os.Create(path)
	if err != nil {
		return "", eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	if err := Render(f, rs, now); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", eris.Wrapf(err, "report: close %s", path)
	}

	zap.L().Info("report written",
		zap.String("component", "report"),
		zap.String("path", path),
		zap.Int("destinations", rs.Len()),
	)
	return path, nil
}

// Render writes the report body for rs, stamped with generatedAt.
func Render(w io.Writer, rs *model.ResultSet, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)
	banner := strings.Repeat("=", width)
	rule := strings.Repeat("-", width)

	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "WEEKEND GETAWAY RECOMMENDATIONS FROM %s\n", strings.ToUpper(rs.Source))
	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "Generated on: %s\n", generatedAt.Format(generatedTimeLayout))
	fmt.Fprintf(bw, "Total Destinations Found: %d\n", rs.Len())
	fmt.Fprintf(bw, "%s\n\n", banner)

	if rs.Len() == 0 {
		fmt.Fprint(bw, "No recommendations available\n\n")
	}
	for i, p := range rs.Places {
		fmt.Fprintf(bw, "#%d %s\n", i+1, strings.ToUpper(p.Name))
		fmt.Fprintln(bw, rule)
		fmt.Fprintf(bw, "  Location   : %s, %s\n", p.City, p.State)
		fmt.Fprintf(bw, "  Distance   : %.2f km\n", p.DistanceKM)
		fmt.Fprintf(bw, "  Rating     : %.1f / 5.0\n", p.Rating)
		fmt.Fprintf(bw, "  Popularity : %.2f lakhs reviews\n", p.Popularity)
		fmt.Fprintf(bw, "  Score      : %.4f\n\n", p.Score)
	}

	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw, "END OF REPORT")
	fmt.Fprintln(bw, banner)

	if err := bw.Flush(); err != nil {
		return eris.Wrap(err, "report: write")
	}
	return nil
}
