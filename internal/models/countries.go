package models

// CountryInfo is static metadata for one national team.
type CountryInfo struct {
	Name string
	Flag string
}

// Countries lists the twelve national teams in the tournament.
var Countries = map[string]CountryInfo{
	"CAN": {Name: "Canada", Flag: "🇨🇦"},
	"USA": {Name: "United States", Flag: "🇺🇸"},
	"SWE": {Name: "Sweden", Flag: "🇸🇪"},
	"FIN": {Name: "Finland", Flag: "🇫🇮"},
	"CZE": {Name: "Czechia", Flag: "🇨🇿"},
	"SUI": {Name: "Switzerland", Flag: "🇨🇭"},
	"GER": {Name: "Germany", Flag: "🇩🇪"},
	"SVK": {Name: "Slovakia", Flag: "🇸🇰"},
	"DEN": {Name: "Denmark", Flag: "🇩🇰"},
	"LAT": {Name: "Latvia", Flag: "🇱🇻"},
	"ITA": {Name: "Italy", Flag: "🇮🇹"},
	"FRA": {Name: "France", Flag: "🇫🇷"},
}

// CountryName returns the display name for a country code, falling back to
// the code itself for untracked teams.
func CountryName(code string) string {
	if info, ok := Countries[code]; ok {
		return info.Name
	}
	return code
}
