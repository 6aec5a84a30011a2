package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/getaway-cli/internal/config"
	"github.com/sells-group/getaway-cli/internal/dataset"
	"github.com/sells-group/getaway-cli/internal/geo"
	"github.com/sells-group/getaway-cli/internal/model"
	"github.com/sells-group/getaway-cli/internal/monitoring"
	"github.com/sells-group/getaway-cli/internal/pipeline"
	"github.com/sells-group/getaway-cli/internal/registry"
	"github.com/sells-group/getaway-cli/internal/report"
	"github.com/sells-group/getaway-cli/internal/scorer"
)

const bannerWidth = 78

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Recommend weekend getaways from a source city",
	Long: `Rank destinations in the dataset for a source city.

Destinations in the source city itself are excluded, the rest are filtered by
distance and minimum rating, scored as

  0.4 × rating/max + 0.3 × popularity/max + 0.3 × (1 − distance/max)

and the top results are printed and written to a timestamped report file.

Without --source the available cities are listed and the source city is read
from stdin.

Examples:
  # Interactive
  rank

  # Top 10 within 450 km of Delhi
  rank --source Delhi --top 10 --max-distance 450

  # CSV to stdout, no report file
  rank --source Pune --format csv --no-report`,
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.String("source", "", "source city (prompted for when empty)")
	f.Int("top", 0, "number of recommendations (overrides config)")
	f.Float64("max-distance", 0, "maximum distance in km (overrides config)")
	f.Float64("min-rating", 0, "minimum rating (overrides config)")
	f.String("dataset", "", "dataset path (overrides config)")
	f.String("output-dir", "", "report output directory (overrides config)")
	f.Bool("no-report", false, "do not write a report file")
	f.String("format", "table", "console output format: table or csv")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := applyRankOverrides(cmd, *cfg)
	if err := c.Validate(); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "csv" {
		return eris.Errorf("rank: --format must be table or csv (got %q)", format)
	}

	reg, err := registry.FromConfig(c.Registry.ExtraPath)
	if err != nil {
		return err
	}
	method, err := geo.ParseMethod(c.Ranking.DistanceMethod)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	source, _ := cmd.Flags().GetString("source")
	prompted := strings.TrimSpace(source) == ""
	if prompted {
		printWelcome(out, reg.Names())
		fmt.Fprint(out, "\nEnter your source city: ")
		source, err = readLine(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	var reports pipeline.ReportWriter
	if c.Report.Enabled {
		reports = report.NewWriter(c.Report.OutputDir, nil)
	}
	var metrics *monitoring.Metrics
	if c.Metrics.TextfilePath != "" {
		metrics = monitoring.NewMetrics()
	}

	p := pipeline.New(
		dataset.NewLoader(dataset.Options{Path: c.Dataset.Path, Sheet: c.Dataset.Sheet}),
		scorer.NewEngine(reg, method),
		reports,
		metrics,
		nil,
	)

	req := model.Request{
		SourceCity:    strings.TrimSpace(source),
		TopN:          c.Ranking.TopN,
		MaxDistanceKM: c.Ranking.MaxDistanceKM,
		MinRating:     c.Ranking.MinRating,
	}
	rs, runErr := p.Run(ctx, req)

	if metrics != nil {
		if err := metrics.WriteTextfile(c.Metrics.TextfilePath); err != nil {
			zap.L().Warn("rank: metrics textfile not written", zap.Error(err))
		}
	}

	if errors.Is(runErr, scorer.ErrUnknownCity) {
		var cities []string
		if !prompted {
			cities = reg.Names()
		}
		printUnknownCity(out, req.SourceCity, cities)
		return nil
	}
	if rs == nil || rs.Outcome == model.OutcomeDatasetError {
		return runErr
	}

	if format == "csv" {
		if err := writeRankCSV(out, rs); err != nil {
			return err
		}
	} else {
		if rs.Outcome == model.OutcomeNoMatches {
			fmt.Fprintln(out, "No destinations found matching your criteria")
		}
		printRecommendations(out, rs)
	}

	if rs.ReportPath != "" {
		msgOut := out
		if format == "csv" {
			msgOut = cmd.ErrOrStderr()
		}
		fmt.Fprintf(msgOut, "Recommendation saved in output file: %s\n\n", rs.ReportPath)
	}
	return runErr
}

// applyRankOverrides returns a copy of the base config with CLI flag overrides applied.
func applyRankOverrides(cmd *cobra.Command, base config.Config) config.Config {
	c := base

	// Explicit values are applied as given so Validate can reject bad ones.
	if cmd.Flags().Changed("top") {
		c.Ranking.TopN, _ = cmd.Flags().GetInt("top")
	}
	if cmd.Flags().Changed("max-distance") {
		c.Ranking.MaxDistanceKM, _ = cmd.Flags().GetFloat64("max-distance")
	}
	if cmd.Flags().Changed("min-rating") {
		c.Ranking.MinRating, _ = cmd.Flags().GetFloat64("min-rating")
	}
	if v, _ := cmd.Flags().GetString("dataset"); v != "" {
		c.Dataset.Path = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		c.Report.OutputDir = v
	}
	if v, _ := cmd.Flags().GetBool("no-report"); v {
		c.Report.Enabled = false
	}

	return c
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", eris.Wrap(err, "rank: read source city")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", eris.New("rank: no source city given")
	}
	return line, nil
}

func printWelcome(w io.Writer, cities []string) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintln(w, "WEEKEND GETAWAY RECOMMENDATION SYSTEM")
	fmt.Fprintln(w, banner)
	fmt.Fprint(w, "\nAvailable Cities:\n\n")
	printCities(w, cities)
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("─", bannerWidth))
}

// printCities lists names five to a row in 15-character columns.
func printCities(w io.Writer, cities []string) {
	for i := 0; i < len(cities); i += 5 {
		var b strings.Builder
		b.WriteString("   ")
		for _, name := range cities[i:min(i+5, len(cities))] {
			fmt.Fprintf(&b, "%-15s", name)
		}
		fmt.Fprintln(w, b.String())
	}
}

// printUnknownCity reports a source city missing from the registry. cities is
// listed first when the caller has not already shown it.
func printUnknownCity(w io.Writer, source string, cities []string) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Error: '%s' is not available in our database.\n", source)
	if len(cities) > 0 {
		fmt.Fprint(w, "\nAvailable Cities:\n\n")
		printCities(w, cities)
	}
	fmt.Fprint(w, "\nPlease choose from the available cities listed above.\n")
	fmt.Fprintf(w, "%s\n\n", banner)
}

func printRecommendations(w io.Writer, rs *model.ResultSet) {
	title := fmt.Sprintf("TOP WEEKEND GETAWAYS FROM %s", strings.ToUpper(rs.Source))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))

	if rs.Empty() {
		fmt.Fprintln(w, "No recommendations available")
		return
	}

	fmt.Fprintf(w, "%-3s %-30s %-15s %-10s %-8s %-12s %-8s\n",
		"#", "DESTINATION", "CITY", "DIST(km)", "RATING", "POPULARITY", "SCORE")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, p := range rs.Places {
		fmt.Fprintf(w, "%-3d %-30s %-15s %7.2f   %7.1f   %8.2f   %7.2f\n",
			i+1, truncate(p.Name, 30), truncate(p.City, 15),
			p.DistanceKM, p.Rating, p.Popularity, p.Score)
	}
	fmt.Fprintln(w, strings.Repeat("-", 90))
}

// truncate shortens s to width runes, marking the cut with "..".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-2]) + ".."
}

func writeRankCSV(w io.Writer, rs *model.ResultSet) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "name", "city", "state", "distance_km", "rating", "popularity", "score"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "rank: write CSV header")
	}

	for i, p := range rs.Places {
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			p.City,
			p.State,
			fmt.Sprintf("%.2f", p.DistanceKM),
			fmt.Sprintf("%.1f", p.Rating),
			fmt.Sprintf("%.2f", p.Popularity),
			fmt.Sprintf("%.4f", p.Score),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "rank: write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "rank: flush CSV")
	}
	return nil
}
