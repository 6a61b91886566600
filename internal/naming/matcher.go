package naming

import (
	"maps"

	"github.com/osse101/GlobePalette_Go/internal/domain"
)

// DefaultOverrides maps names that diverge from the reference data (older
// official names, abbreviated map labels) to the name the reference set uses.
var DefaultOverrides = map[string]string{
	"USA":                    "United States of America",
	"United States":          "United States of America",
	"UK":                     "United Kingdom",
	"Czech Republic":         "Czechia",
	"Swaziland":              "Eswatini",
	"Burma":                  "Myanmar",
	"Macedonia":              "North Macedonia",
	"East Timor":             "Timor-Leste",
	"Russian Federation":     "Russia",
	"Korea, Republic of":     "South Korea",
	"Dem. Rep. Congo":        "DR Congo",
	"Central African Rep.":   "Central African Republic",
	"Bosnia and Herz.":       "Bosnia and Herzegovina",
	"Dominican Rep.":         "Dominican Republic",
	"Eq. Guinea":             "Equatorial Guinea",
	"S. Sudan":               "South Sudan",
	"W. Sahara":              "Western Sahara",
	"Solomon Is.":            "Solomon Islands",
	"Falkland Is.":           "Falkland Islands",
	"Fr. S. Antarctic Lands": "French Southern and Antarctic Lands",
}

// Matcher resolves free-form place names against a reference set using the
// ordered Strategies chain. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	overrides map[string]string // folded key -> canonical name
}

// NewMatcher returns a matcher using DefaultOverrides merged with extra.
// Entries in extra replace defaults with the same key.
func NewMatcher(extra map[string]string) *Matcher {
	overrides := make(map[string]string, len(DefaultOverrides)+len(extra))
	for k, v := range DefaultOverrides {
		overrides[fold(k)] = v
	}
	for k, v := range extra {
		overrides[fold(k)] = v
	}
	return &Matcher{overrides: overrides}
}

// Overrides returns a copy of the override table keyed by folded name.
func (m *Matcher) Overrides() map[string]string {
	return maps.Clone(m.overrides)
}

// Resolve returns the first record matched by the strategy chain.
func (m *Matcher) Resolve(name string, records []domain.Country) (domain.Country, bool) {
	c, s := m.ResolveWithStrategy(name, records)
	return c, s != StrategyNone
}

// ResolveWithStrategy is Resolve that also reports which strategy matched.
// A miss returns the zero record and StrategyNone.
func (m *Matcher) ResolveWithStrategy(name string, records []domain.Country) (domain.Country, Strategy) {
	q := newQuery(name)
	if q.folded == "" {
		return domain.Country{}, StrategyNone
	}
	for _, s := range Strategies {
		if i := m.match(s, q, records); i >= 0 {
			return records[i], s
		}
	}
	return domain.Country{}, StrategyNone
}

// ResolveTable resolves against a prebuilt table. Override, exact, normalized
// and alt-spelling lookups are map hits; partial matching still scans the
// table's records. The result is identical to Resolve over the same records.
func (m *Matcher) ResolveTable(name string, table *LookupTable) (domain.Country, Strategy) {
	if table == nil {
		return domain.Country{}, StrategyNone
	}
	q := newQuery(name)
	if q.folded == "" {
		return domain.Country{}, StrategyNone
	}

	for _, s := range Strategies {
		i := -1
		switch s {
		case StrategyOverride:
			i = table.lookup(table.override, q.folded)
		case StrategyExact:
			i = table.lookup(table.exact, q.folded)
		case StrategyNormalized:
			i = table.lookup(table.normalized, q.normalized)
		case StrategyPartial:
			i = m.match(StrategyPartial, q, table.records)
		case StrategyAltSpelling:
			i = table.lookup(table.alt, q.normalized)
		}
		if i >= 0 {
			return table.records[i], s
		}
	}
	return domain.Country{}, StrategyNone
}
