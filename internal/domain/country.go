package domain

import "strings"

// Country is the canonical reference record for one country.
// Records are immutable once fetched; share them by value.
type Country struct {
	Name         string   `json:"name"`
	OfficialName string   `json:"official_name"`
	AltSpellings []string `json:"alt_spellings,omitempty"`
	CCA2         string   `json:"cca2"`
	CCA3         string   `json:"cca3"`
	Continent    string   `json:"continent"`
	Region       string   `json:"region,omitempty"`
	FlagURL      string   `json:"flag_url,omitempty"`
}

// IsZero reports whether c is the empty record.
func (c Country) IsZero() bool {
	return c.Name == "" && c.OfficialName == "" && c.CCA2 == "" && c.CCA3 == ""
}

// HasCode reports whether code matches the two or three letter code, case-insensitively.
func (c Country) HasCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	return strings.EqualFold(c.CCA2, code) || strings.EqualFold(c.CCA3, code)
}
