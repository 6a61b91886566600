package naming

import (
	"strings"

	"github.com/osse101/GlobePalette_Go/internal/domain"
)

// LookupTable indexes every alias of a reference set. It is built once per
// (re)load and never mutated afterwards, so concurrent reads need no locking.
type LookupTable struct {
	records    []domain.Country
	override   map[string]int
	exact      map[string]int
	normalized map[string]int
	alt        map[string]int
}

// BuildTable indexes records with this matcher's overrides. When several
// records share an alias the earliest one in records owns it.
func (m *Matcher) BuildTable(records []domain.Country) *LookupTable {
	t := &LookupTable{
		records:    records,
		override:   make(map[string]int, len(m.overrides)),
		exact:      make(map[string]int, len(records)*2),
		normalized: make(map[string]int, len(records)*2),
		alt:        make(map[string]int, len(records)*4),
	}

	for i, c := range records {
		for _, name := range []string{c.Name, c.OfficialName} {
			if name == "" {
				continue
			}
			putFirst(t.exact, fold(name), i)
			putFirst(t.normalized, Normalize(name), i)
		}
		for _, alt := range c.AltSpellings {
			putFirst(t.alt, Normalize(alt), i)
		}
	}

	for key, target := range m.overrides {
		if i, ok := t.exact[fold(target)]; ok {
			t.override[key] = i
		}
	}
	return t
}

// Len is the number of indexed records.
func (t *LookupTable) Len() int {
	return len(t.records)
}

// Records returns the indexed reference set in its original order.
func (t *LookupTable) Records() []domain.Country {
	return t.records
}

// Aliases returns every alias key the table can resolve without scanning.
func (t *LookupTable) Aliases() []string {
	keys := make([]string, 0, len(t.override)+len(t.exact)+len(t.normalized)+len(t.alt))
	for _, m := range []map[string]int{t.override, t.exact, t.normalized, t.alt} {
		for k := range m {
			keys = append(keys, k)
		}
	}
	return keys
}

// Reachable reports whether the record at index i is the target of at least
// one alias.
func (t *LookupTable) Reachable(i int) bool {
	for _, m := range []map[string]int{t.override, t.exact, t.normalized, t.alt} {
		for _, idx := range m {
			if idx == i {
				return true
			}
		}
	}
	return false
}

func (t *LookupTable) lookup(m map[string]int, key string) int {
	if key == "" {
		return -1
	}
	if i, ok := m[key]; ok {
		return i
	}
	return -1
}

func putFirst(m map[string]int, key string, i int) {
	if strings.TrimSpace(key) == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = i
	}
}
