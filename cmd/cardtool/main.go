package main

import (
	"brevet-controle-service/internal/config"
	"brevet-controle-service/internal/domain"
	"brevet-controle-service/internal/services"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
)

// cardtool prints the controle card for one brevet: every controle's opening
// and closing time under the ACP speed limits.
//
// Usage:
//
//	cardtool -brevet 200 -start 2026-05-02T06:00 60 120 160 200
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	brevetKm := flag.Int("brevet", config.GetInt("BREVET_KM", 200), "nominal brevet distance in km (200, 300, 400, 600 or 1000)")
	units := flag.String("units", config.Get("UNITS", "km"), "unit of the controle distances (km or mi)")
	startStr := flag.String("start", "", "ride start, RFC 3339 or YYYY-MM-DDTHH:MM (default: now)")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("at least one controle distance is required")
	}

	distances := make([]float64, 0, flag.NArg())
	for _, arg := range flag.Args() {
		d, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("controle distance %q is not a number", arg)
		}
		distances = append(distances, d)
	}

	unit, err := domain.ParseUnit(*units)
	if err != nil {
		log.Fatal(err)
	}

	brevet, err := domain.ParseBrevetDistance(*brevetKm)
	if err != nil {
		log.Fatal(err)
	}

	start, err := parseStart(*startStr)
	if err != nil {
		log.Fatal(err)
	}

	calc, err := services.NewCalculator()
	if err != nil {
		log.Fatal(err)
	}

	card, err := calc.Card(distances, unit, brevet, start)
	if err != nil {
		log.Fatal(err)
	}

	printCard(os.Stdout, brevet, start, card)
}

func parseStart(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse start %q: want RFC 3339 or YYYY-MM-DDTHH:MM", s)
}

const clockLayout = "Mon 02 Jan 15:04"

func printCard(w io.Writer, brevet domain.BrevetDistance, start time.Time, card []domain.ControleWindow) {
	fmt.Fprintf(w, "%d km brevet starting %s\n\n", int(brevet), start.Format("2006-01-02 15:04 MST"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTROLE\tOPENS\tCLOSES\tIN HAND")
	for _, win := range card {
		fmt.Fprintf(tw, "%g km\t%s\t%s\t%s\n",
			win.DistanceKm,
			win.Open.Format(clockLayout),
			win.Close.Format(clockLayout),
			(win.CloseOffset - win.OpenOffset).String(),
		)
	}
	tw.Flush()
}
