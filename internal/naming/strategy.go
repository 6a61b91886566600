package naming

import (
	"strings"

	"github.com/osse101/GlobePalette_Go/internal/domain"
)

// Strategy identifies one step of the resolution chain.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyOverride
	StrategyExact
	StrategyNormalized
	StrategyPartial
	StrategyAltSpelling
)

// Strategies is the fixed evaluation order. The first strategy that yields a
// record wins.
var Strategies = []Strategy{
	StrategyOverride,
	StrategyExact,
	StrategyNormalized,
	StrategyPartial,
	StrategyAltSpelling,
}

func (s Strategy) String() string {
	switch s {
	case StrategyOverride:
		return "override"
	case StrategyExact:
		return "exact"
	case StrategyNormalized:
		return "normalized"
	case StrategyPartial:
		return "partial"
	case StrategyAltSpelling:
		return "alt_spelling"
	default:
		return "none"
	}
}

// query carries the precomputed forms of a lookup string.
type query struct {
	folded     string
	normalized string
}

func newQuery(s string) query {
	return query{folded: fold(s), normalized: Normalize(s)}
}

// match scans records in order and returns the index of the first record the
// strategy accepts, or -1.
func (m *Matcher) match(s Strategy, q query, records []domain.Country) int {
	switch s {
	case StrategyOverride:
		target, ok := m.overrides[q.folded]
		if !ok {
			return -1
		}
		return indexOf(records, func(c domain.Country) bool {
			return namesEqualFold(c, target)
		})
	case StrategyExact:
		return indexOf(records, func(c domain.Country) bool {
			return namesEqualFold(c, q.folded)
		})
	case StrategyNormalized:
		if q.normalized == "" {
			return -1
		}
		return indexOf(records, func(c domain.Country) bool {
			return Normalize(c.Name) == q.normalized || Normalize(c.OfficialName) == q.normalized
		})
	case StrategyPartial:
		return indexOf(records, func(c domain.Country) bool {
			return partialMatch(q.folded, fold(c.Name)) || partialMatch(q.folded, fold(c.OfficialName))
		})
	case StrategyAltSpelling:
		if q.normalized == "" {
			return -1
		}
		return indexOf(records, func(c domain.Country) bool {
			for _, alt := range c.AltSpellings {
				if Normalize(alt) == q.normalized {
					return true
				}
			}
			return false
		})
	}
	return -1
}

func indexOf(records []domain.Country, pred func(domain.Country) bool) int {
	for i := range records {
		if pred(records[i]) {
			return i
		}
	}
	return -1
}

func namesEqualFold(c domain.Country, name string) bool {
	name = fold(name)
	if name == "" {
		return false
	}
	return fold(c.Name) == name || fold(c.OfficialName) == name
}

// partialMatch reports containment in either direction. Empty strings never match.
func partialMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
