package validation

// CantonCodes are the 26 official two-letter Swiss canton abbreviations, in
// the conventional BFS order.
var CantonCodes = []string{
	"ZH", "BE", "LU", "UR", "SZ", "OW", "NW", "GL", "ZG", "FR",
	"SO", "BS", "BL", "SH", "AR", "AI", "SG", "GR", "AG", "TG",
	"TI", "VD", "VS", "NE", "GE", "JU",
}

var cantonSet = toSet(CantonCodes)

// ReligionCodes are the eCH-0011 religion codes from the BFS catalog.
var ReligionCodes = []string{
	"000", // unknown
	"111", // Evangelisch-reformiert
	"121", // Römisch-katholisch
	"122", // Christkatholisch
	"123", // Altkatholisch
	"211", // Jüdische Glaubensgemeinschaft
	"212", // Islamische Glaubensgemeinschaft
	"213", // Buddhistische Gemeinschaft
	"214", // Hinduistische Gemeinschaft
	"301", // Evangelisch-methodistische Kirche
	"711", // Konfessionslos
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}
