package domain

import "time"

// Severity classes assigned upstream by SAMUR dispatch.
const (
	MinSeverity = 1
	MaxSeverity = 5
)

// CallRecord represents one raw row of the activations CSV. Fields keep the
// source's string form; validation happens in DeriveEmergency.
type CallRecord struct {
	RequestTime string // "Solicitud" column, e.g. "2017-01-01 00:23:19"
	District    string // "Distrito" column, district name
	Severity    string // "Gravedad" column, "1".."5"
}

// Emergency is the derived representation of one call after feature
// extraction. All fields are populated together; an Emergency is never
// partially derived.
type Emergency struct {
	Time         time.Time
	Severity     int
	DistrictCode int // official Madrid district code, 1–21
	Hour         int // 0–23
	Weekday      int // ISO: 1=Monday … 7=Sunday
	Month        int // 1–12
}
