package domain

import (
	"fmt"
	"math"
)

// SeverityProfile describes how calls of one severity class are distributed
// in time and space.
//
// Frequency is an absolute calls-per-second rate over the whole dataset span.
// The hour/weekday/month maps hold mean-normalized shape factors: 1.0 means
// average density for that severity, 2.0 twice the average. DistrictProb is a
// true probability mass function over district codes and sums to 1.
//
// Buckets with no calls in the historical sample are omitted; consumers must
// read a missing key as factor 1.0 (see Density).
type SeverityProfile struct {
	Frequency    float64         `yaml:"frequency"`     // calls/second, 8 dp
	HourlyDist   map[int]float64 `yaml:"hourly_dist"`   // hour 0–23 → factor, 5 dp
	DailyDist    map[int]float64 `yaml:"daily_dist"`    // ISO weekday 1–7 → factor, 5 dp
	MonthlyDist  map[int]float64 `yaml:"monthly_dist"`  // month 1–12 → factor, 5 dp
	DistrictProb map[int]float64 `yaml:"district_prob"` // district code → probability, 5 dp
}

// ProfileTable is the full contract document: one profile per severity 1–5.
type ProfileTable map[int]SeverityProfile

// Density estimates the instantaneous calls-per-second rate for a severity at
// a given hour, ISO weekday, and month, treating the three margins as
// independent multiplicative modifiers of the base frequency. Buckets missing
// from the stored table count as average (factor 1.0), mirroring their
// omission in Aggregate.
func Density(table ProfileTable, severity, hour, weekday, month int) (float64, error) {
	profile, ok := table[severity]
	if !ok {
		return 0, fmt.Errorf("no profile for severity %d", severity)
	}
	return profile.Frequency *
		factorOrAverage(profile.HourlyDist, hour) *
		factorOrAverage(profile.DailyDist, weekday) *
		factorOrAverage(profile.MonthlyDist, month), nil
}

func factorOrAverage(dist map[int]float64, key int) float64 {
	if f, ok := dist[key]; ok {
		return f
	}
	return 1.0
}

// Stored precision is a deliberate size/precision tradeoff: 5 decimal places
// for distributions, 8 for the frequency. Rounding before serialization is
// what makes the YAML round trip exact.
func roundDist(v float64) float64 { return math.Round(v*1e5) / 1e5 }

func roundFreq(v float64) float64 { return math.Round(v*1e8) / 1e8 }
