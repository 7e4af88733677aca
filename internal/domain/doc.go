// Package domain models SAMUR-Protección Civil emergency activation data.
//
// # Data Source
//
// Activations come from the Madrid open data portal
// (https://datos.madrid.es), one CSV row per emergency call attended by
// SAMUR. The export is semicolon-separated with a header row. Columns of
// interest:
//
//	Solicitud — request timestamp, "2006-01-02 15:04:05" layout, local time.
//	Distrito  — district name, one of Madrid's 21 administrative districts.
//	            Spelling varies across yearly exports: accented vs plain
//	            ("Chamberí" / "CHAMBERI"), and a few short forms
//	            ("Fuencarral" for "Fuencarral-El Pardo").
//	Gravedad  — severity class 1 (most urgent) to 5, assigned upstream.
//
// Remaining columns (intervention code, hospital, closure code) are ignored.
//
// # Derived features
//
// Each valid row becomes an Emergency carrying the parsed timestamp, the
// official district code (Centro=1 … Barajas=21), and the hour (0–23),
// ISO weekday (1=Monday … 7=Sunday) and month (1–12) of the request.
//
// # Profiles
//
// Aggregate reduces a dataset to one SeverityProfile per severity class:
// a calls-per-second frequency over the whole dataset span, mean-normalized
// shape factors per hour/weekday/month, and a probability mass function over
// districts. Density recombines them under an independence assumption; the
// resulting table is the sole contract consumed by the downstream emergency
// generator.
package domain
