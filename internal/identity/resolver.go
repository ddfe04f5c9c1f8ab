// Package identity resolves observed box-score names (usually abbreviated,
// sometimes diacritic-mangled) to canonical roster players. Resolution is a
// single pure lookup with a fixed precedence: exact full name, exact alias,
// diacritic-stripped alias, then the raw observed name.
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/wallycup/stats-engine/internal/models"
)

// RosterInfo is the roster-side identity of a resolved player.
type RosterInfo struct {
	Team    string
	Country string
	Pos     string
	NHLTeam string
}

// Resolver maps observed names to canonical roster identities.
type Resolver struct {
	byFullName map[string]RosterInfo
	aliases    map[string]string // abbreviated or stripped form -> full name
	overrides  map[string]string // observed name -> display name
}

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics folds accented characters to their ASCII base (é→e, ü→u).
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// NewResolver builds the alias tables from the rosters and the optional
// abbreviated-name overrides.
func NewResolver(rosters models.Rosters, overrides map[string]string) *Resolver {
	r := &Resolver{
		byFullName: make(map[string]RosterInfo),
		aliases:    make(map[string]string),
		overrides:  overrides,
	}
	if r.overrides == nil {
		r.overrides = map[string]string{}
	}

	for team, players := range rosters {
		for _, p := range players {
			r.byFullName[p.Name] = RosterInfo{
				Team:    team,
				Country: p.Country,
				Pos:     p.Pos,
				NHLTeam: p.NHLTeam,
			}
			r.addAliases(p.Name)
		}
	}
	return r
}

// addAliases registers the abbreviated forms a box score may use for a full
// name: "J. Ek", multi-word last names ("J. Eriksson Ek"), hyphenated first
// initials ("P-L. Dubois"), each also in diacritic-stripped form.
func (r *Resolver) addAliases(fullName string) {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return
	}

	register := func(alias string) {
		r.aliases[alias] = fullName
		if stripped := StripDiacritics(alias); stripped != alias {
			r.aliases[stripped] = fullName
		}
	}

	first, last := parts[0], parts[len(parts)-1]
	register(string([]rune(first)[0]) + ". " + last)

	if len(parts) >= 3 {
		register(string([]rune(first)[0]) + ". " + strings.Join(parts[1:], " "))
	}

	if strings.Contains(first, "-") {
		initials := make([]string, 0, 2)
		for _, seg := range strings.Split(first, "-") {
			if seg != "" {
				initials = append(initials, string([]rune(seg)[0]))
			}
		}
		register(strings.Join(initials, "-") + ". " + last)
	}
}

// Resolve returns the canonical name for an observed one, plus the roster
// info when the player is on a fantasy roster. Unmatched names resolve to
// themselves so the player is still tracked under the raw observed name.
func (r *Resolver) Resolve(observed string) (string, *RosterInfo) {
	if info, ok := r.byFullName[observed]; ok {
		return observed, &info
	}
	if full, ok := r.aliases[observed]; ok {
		info := r.byFullName[full]
		return full, &info
	}
	if full, ok := r.aliases[StripDiacritics(observed)]; ok {
		info := r.byFullName[full]
		return full, &info
	}
	return observed, nil
}

// DisplayName maps an observed abbreviated name to its full display form via
// the override table, falling back to the observed name.
func (r *Resolver) DisplayName(observed string) string {
	if full, ok := r.overrides[observed]; ok {
		return full
	}
	return observed
}
