package countries

import (
	"strings"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/naming"
)

// Snapshot is one immutable load of the reference set together with its
// indexes. A new Snapshot replaces the old one on every refresh.
type Snapshot struct {
	Records   []domain.Country
	Table     *naming.LookupTable
	FetchedAt time.Time

	byCode map[string]int
}

func newSnapshot(records []domain.Country, m *naming.Matcher, fetchedAt time.Time) *Snapshot {
	s := &Snapshot{
		Records:   records,
		Table:     m.BuildTable(records),
		FetchedAt: fetchedAt,
		byCode:    make(map[string]int, len(records)*2),
	}
	for i, c := range records {
		for _, code := range []string{c.CCA2, c.CCA3} {
			key := strings.ToUpper(strings.TrimSpace(code))
			if key == "" {
				continue
			}
			if _, ok := s.byCode[key]; !ok {
				s.byCode[key] = i
			}
		}
	}
	return s
}

// LookupCode finds a record by its two or three letter code.
func (s *Snapshot) LookupCode(code string) (domain.Country, bool) {
	if s == nil {
		return domain.Country{}, false
	}
	i, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.Country{}, false
	}
	return s.Records[i], true
}

// Age is the time elapsed since the snapshot was fetched.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// FreshAt reports whether the snapshot is within ttl at now.
func (s *Snapshot) FreshAt(now time.Time, ttl time.Duration) bool {
	return s != nil && s.Age(now) <= ttl
}
