package refdata

import "time"

// Locality is one entry of the postal locality dataset: a locality served by
// a 4-digit postal code. A postal code can serve several localities and a
// locality can appear under several codes.
type Locality struct {
	PostalCode string // normalized 4-digit code
	Name       string // official locality name, e.g. "Zürich Sihlpost"
	BFSCode    string // BFS code of the owning municipality
}

// Municipality is one entry of the BFS municipality register.
type Municipality struct {
	BFSCode        string
	Name           string
	CantonCode     string // two-letter canton abbreviation, e.g. "ZH"
	HistoricalCode string // former code when the municipality was merged, "" otherwise
	RetiredAt      *time.Time
}

// Retired reports whether the municipality has been superseded (merged away).
func (m Municipality) Retired() bool {
	return m.RetiredAt != nil
}

// Street is one entry of the federal street directory.
type Street struct {
	Name             string
	MunicipalityBFS  string
	MunicipalityName string
	PostalCodes      []string // normalized 4-digit codes the street is served by
}
