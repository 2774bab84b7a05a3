// Package refdata holds the authoritative Swiss reference datasets in RAM and
// exposes indexed lookups over them.
//
// # Datasets
//
// Three datasets back validation:
//
//	Postal localities:  4-digit postal code → localities it serves. One code
//	                    can serve several localities ("8001" → "Zürich",
//	                    "Zürich Sihlpost"), and each locality carries the BFS
//	                    code of its municipality.
//	Municipalities:     the federal statistics office (BFS) municipality
//	                    register. Merged municipalities keep a historical code
//	                    pointing at their successor and a retirement date.
//	Streets:            the federal street directory (Amtliches
//	                    Strassenverzeichnis), several hundred thousand records.
//
// # Loading contract
//
// Each cache loads its dataset once per process on first access, behind a
// mutex so concurrent first access performs a single load. Loading never
// fails from the caller's point of view: any source error is logged and the
// cache settles into an observably empty state, which disables the checks
// that depend on it. Clear returns a cache to the unloaded state and exists
// for tests.
//
// # Indices
//
// At load time each cache builds its lookup indices so queries are
// bounded-time rather than linear scans:
//
//	postal:       normalized code → ordered locality list
//	municipality: by current BFS code, by historical code
//	street:       by first two runes of the normalized name (bounds fuzzy
//	              search), by owning municipality, by served postal code
//
// # Name matching
//
// Street and town matching is tolerant of case, diacritics (Zürich/Zurich,
// Genève/Geneve), truncation ("Bahnhof" finds "Bahnhofstrasse") and common
// Swiss-German street-type abbreviations ("Bahnhofstr" finds
// "Bahnhofstrasse"). See [NormalizeName] and [Streets.FindByName].
package refdata
