package validator

import "strings"

var stateAbbreviations = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

// IsStateAbbreviation reports whether value, trimmed and upper cased, is one of the 50 US states.
func IsStateAbbreviation(value string) bool {
	_, ok := stateAbbreviations[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

// StateAbbreviationCount returns the number of known abbreviations.
func StateAbbreviationCount() int {
	return len(stateAbbreviations)
}
