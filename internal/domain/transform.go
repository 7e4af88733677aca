package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RequestTimeLayout is the timestamp format of the "Solicitud" column.
const RequestTimeLayout = "2006-01-02 15:04:05"

// DeriveEmergency validates a raw call record and extracts the features the
// aggregator needs. Any malformed field is an error; downstream correctness
// depends on complete, well-formed rows, so callers abort rather than skip.
func DeriveEmergency(rec CallRecord) (Emergency, error) {
	t, err := time.Parse(RequestTimeLayout, strings.TrimSpace(rec.RequestTime))
	if err != nil {
		return Emergency{}, fmt.Errorf("parse request time: %w", err)
	}

	severity, err := parseSeverity(rec.Severity)
	if err != nil {
		return Emergency{}, err
	}

	code, err := DistrictCode(rec.District)
	if err != nil {
		return Emergency{}, err
	}

	return Emergency{
		Time:         t,
		Severity:     severity,
		DistrictCode: code,
		Hour:         t.Hour(),
		Weekday:      isoWeekday(t),
		Month:        int(t.Month()),
	}, nil
}

func parseSeverity(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse severity %q: %w", s, err)
	}
	if v < MinSeverity || v > MaxSeverity {
		return 0, fmt.Errorf("severity %d out of range [%d,%d]", v, MinSeverity, MaxSeverity)
	}
	return v, nil
}

// isoWeekday returns 1 for Monday through 7 for Sunday. time.Weekday counts
// from Sunday=0, so Sunday wraps to 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
