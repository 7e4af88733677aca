package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate reduces a derived dataset to its per-severity profile table.
//
// The frequency baseline divides each severity's call count by the elapsed
// seconds between the earliest and latest request in the whole dataset, not
// per severity: all classes share one observation window. Every severity
// class 1–5 must be represented; an absent class would make its shape
// distributions meaningless (mean over zero buckets), so it is an input-data
// error.
func Aggregate(emergencies []Emergency) (ProfileTable, error) {
	if len(emergencies) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	span, err := datasetSpanSeconds(emergencies)
	if err != nil {
		return nil, err
	}

	groups := make(map[int][]Emergency, MaxSeverity)
	for _, e := range emergencies {
		groups[e.Severity] = append(groups[e.Severity], e)
	}

	table := make(ProfileTable, MaxSeverity)
	for severity := MinSeverity; severity <= MaxSeverity; severity++ {
		group := groups[severity]
		if len(group) == 0 {
			return nil, fmt.Errorf("no records with severity %d", severity)
		}
		table[severity] = SeverityProfile{
			Frequency:    roundFreq(float64(len(group)) / span),
			HourlyDist:   relativeDist(group, func(e Emergency) int { return e.Hour }),
			DailyDist:    relativeDist(group, func(e Emergency) int { return e.Weekday }),
			MonthlyDist:  relativeDist(group, func(e Emergency) int { return e.Month }),
			DistrictProb: districtProb(group),
		}
	}
	return table, nil
}

func datasetSpanSeconds(emergencies []Emergency) (float64, error) {
	minTime, maxTime := emergencies[0].Time, emergencies[0].Time
	for _, e := range emergencies[1:] {
		if e.Time.Before(minTime) {
			minTime = e.Time
		}
		if e.Time.After(maxTime) {
			maxTime = e.Time
		}
	}

	span := maxTime.Sub(minTime).Seconds()
	if span <= 0 {
		return 0, fmt.Errorf("dataset time span is not positive (all %d records at %s)",
			len(emergencies), minTime.Format(RequestTimeLayout))
	}
	return span, nil
}

// relativeDist counts the bucket values of one margin and divides each count
// by the mean count over the buckets present. Absent buckets are omitted:
// Density reads them back as 1.0.
func relativeDist(group []Emergency, bucket func(Emergency) int) map[int]float64 {
	counts := make(map[int]int)
	for _, e := range group {
		counts[bucket(e)]++
	}

	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		values = append(values, float64(c))
	}
	mean := stat.Mean(values, nil)

	dist := make(map[int]float64, len(counts))
	for b, c := range counts {
		dist[b] = roundDist(float64(c) / mean)
	}
	return dist
}

// districtProb is a true PMF: count over total for this severity only.
func districtProb(group []Emergency) map[int]float64 {
	counts := make(map[int]int)
	for _, e := range group {
		counts[e.DistrictCode]++
	}

	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		values = append(values, float64(c))
	}
	total := floats.Sum(values)

	probs := make(map[int]float64, len(counts))
	for code, c := range counts {
		probs[code] = roundDist(float64(c) / total)
	}
	return probs
}
