package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/getaway-cli/internal/registry"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities that can be used as a source",
	RunE:  runCities,
}

func init() {
	citiesCmd.Flags().String("format", "table", "output format: table, csv or geojson")

	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")

	reg, err := registry.FromConfig(cfg.Registry.ExtraPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "table":
		fmt.Fprintf(out, "Available Cities (%d):\n\n", reg.Len())
		printCities(out, reg.Names())
		return nil
	case "csv":
		return writeCitiesCSV(out, reg)
	case "geojson":
		data, err := reg.GeoJSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return eris.Wrap(err, "cities: write geojson")
		}
		return nil
	default:
		return eris.Errorf("cities: --format must be table, csv or geojson (got %q)", format)
	}
}

func writeCitiesCSV(w io.Writer, reg *registry.Registry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "lat", "lon"}); err != nil {
		return eris.Wrap(err, "cities: write CSV header")
	}
	for _, name := range reg.Names() {
		c, _ := reg.Lookup(name)
		row := []string{
			c.Name,
			strconv.FormatFloat(c.Coord.Lat, 'f', -1, 64),
			strconv.FormatFloat(c.Coord.Lon, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "cities: write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "cities: flush CSV")
	}
	return nil
}
