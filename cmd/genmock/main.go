// Command genmock generates a synthetic SAMUR activations CSV for local runs
// and experiments. The synthetic data follows rough real-world shapes (more
// calls in the evening and on weekends, severities skewed toward the middle
// classes) so the resulting profile table looks plausible to the downstream
// generator.
//
// Usage:
//
//	go run ./cmd/genmock -out data/samur_activations.csv -rows 50000 -year 2017
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/madridsim/samur-data-profile/internal/domain"
)

var districts = []string{
	"Centro", "Arganzuela", "Retiro", "Salamanca", "Chamartín", "Tetuán",
	"Chamberí", "Fuencarral-El Pardo", "Moncloa-Aravaca", "Latina",
	"Carabanchel", "Usera", "Puente de Vallecas", "Moratalaz",
	"Ciudad Lineal", "Hortaleza", "Villaverde", "Villa de Vallecas",
	"Vicálvaro", "San Blas-Canillejas", "Barajas",
}

// severityWeights skews classes toward 2–4, as in the historical data.
var severityWeights = []int{10, 30, 25, 25, 10}

var months = []string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the synthetic activations CSV")
	rows := flag.Int("rows", 10000, "number of call rows to generate")
	year := flag.Int("year", 2017, "calendar year to spread the calls over")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	rng := rand.New(rand.NewSource(*seed))
	start := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	span := int64(end.Sub(start) / time.Second)

	times := make([]time.Time, 0, *rows)
	for len(times) < *rows {
		ts := start.Add(time.Duration(rng.Int63n(span)) * time.Second)
		// Daytime bias: keep small-hours samples with reduced probability.
		if ts.Hour() >= 7 || rng.Float64() < 0.4 {
			times = append(times, ts)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write([]string{"Año", "Mes", "Solicitud", "Intervención", "Distrito", "Gravedad", "Hospital"}); err != nil {
		return err
	}

	for _, ts := range times {
		intervention := ts.Add(time.Duration(2+rng.Intn(15)) * time.Minute)
		row := []string{
			fmt.Sprint(*year),
			months[ts.Month()-1],
			ts.Format(domain.RequestTimeLayout),
			intervention.Format(domain.RequestTimeLayout),
			districts[rng.Intn(len(districts))],
			fmt.Sprint(pickSeverity(rng)),
			"",
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}

	log.Printf("wrote %d rows to %s", *rows, *out)
	return nil
}

func pickSeverity(rng *rand.Rand) int {
	total := 0
	for _, w := range severityWeights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range severityWeights {
		if n < w {
			return i + domain.MinSeverity
		}
		n -= w
	}
	return domain.MaxSeverity
}
