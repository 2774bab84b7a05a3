// Package opendata loads the Swiss federal reference datasets over HTTP and
// implements the refdata source interfaces.
//
// # Datasets
//
// Three semicolon-delimited CSV exports from the federal geoportal back the
// caches:
//
//	postal localities:  ch.swisstopo-vd.ortschaftenverzeichnis_plz
//	                    columns: plz; ortschaftsname; bfs_nummer
//	municipalities:     ch.bfs.gemeindeverzeichnis (BFS register)
//	                    columns: bfs_nummer; gemeindename; kanton;
//	                    historisches_nummer; aufhebungsdatum (ISO date, empty
//	                    while the municipality is active)
//	streets:            ch.swisstopo.amtliches-strassenverzeichnis
//	                    columns: bezeichnung; bfs_nummer; gemeindename; plz
//	                    (plz is a space-separated code list)
//
// Columns are located by header name, so upstream column reordering does not
// break parsing.
//
// # Last-known-good fallback
//
// After every successful fetch the provider writes a gob snapshot of the
// parsed records to the snapshot directory. When a fetch or parse fails and
// fallback is allowed, the provider serves the snapshot instead, unless it
// is older than the configured maximum age. With no usable snapshot the
// fetch error is returned and the refdata cache settles into its empty
// state.
package opendata
