// Package country holds the static per-country legal and cultural résumé conventions.
package country

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultCode is the target market used when the caller does not name one.
const DefaultCode = "FR"

// Policy states how a personal-data field is treated in a market
type Policy string

const (
	Forbidden Policy = "forbidden"
	Optional  Policy = "optional"
	Expected  Policy = "expected"
	Required  Policy = "required"
)

// Zone groups countries with similar hiring culture
type Zone string

const (
	ZoneEurope           Zone = "europe"
	ZoneAnglo            Zone = "anglo"
	ZoneAsiaPacific      Zone = "asia_pacific"
	ZoneMiddleEastAfrica Zone = "middle_east_africa"
	ZoneLatinAmerica     Zone = "latin_america"
)

// PhotoRule describes whether a photo may, must or should appear
type PhotoRule struct {
	Allowed     bool `json:"allowed"`
	Required    bool `json:"required"`
	Recommended bool `json:"recommended"`
}

// PersonalInfoRule gives the disclosure policy of each personal-data field
type PersonalInfoRule struct {
	Age           Policy `json:"age"`
	BirthDate     Policy `json:"birthDate"`
	MaritalStatus Policy `json:"maritalStatus"`
	Nationality   Policy `json:"nationality"`
	Gender        Policy `json:"gender"`
	DriverLicense Policy `json:"driverLicense"`
}

// FormatRule covers page layout conventions
type FormatRule struct {
	PaperSize  string `json:"paperSize"`
	DateFormat string `json:"dateFormat"`
	MaxPages   int    `json:"maxPages"`
}

// Features lists optional document elements expected by the market
type Features struct {
	Signature     bool     `json:"signature"`
	Stamp         bool     `json:"stamp,omitempty"`
	VisaStatus    bool     `json:"visaStatus,omitempty"`
	LegalFooter   string   `json:"legalFooter,omitempty"`
	BlockedFields []string `json:"blockedFields,omitempty"`
}

// Rule is the résumé convention set of one country
type Rule struct {
	Code              string           `json:"code"`
	Name              string           `json:"name"`
	Zone              Zone             `json:"zone"`
	Photo             PhotoRule        `json:"photo"`
	PersonalInfo      PersonalInfoRule `json:"personalInfo"`
	Format            FormatRule       `json:"format"`
	Features          Features         `json:"features"`
	AcceptedLanguages []string         `json:"acceptedLanguages"`
}

// Accepts reports whether a CV written in lang suits this market.
func (r Rule) Accepts(lang string) bool {
	for _, l := range r.AcceptedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// UnknownCountryError is returned when a country code has no rule
type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country code: %q", e.Code)
}

// Table is an immutable set of country rules keyed by ISO 3166-1 alpha-2 code.
// It is safe for concurrent reads.
type Table struct {
	rules map[string]Rule
}

// NewTable builds a table from the given rules. Later entries replace earlier ones with the same code.
func NewTable(rules ...Rule) *Table {
	t := &Table{rules: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		r.Code = NormalizeCode(r.Code)
		t.rules[r.Code] = r
	}
	return t
}

// NormalizeCode trims and upper-cases a country code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the rule for code. An unrecognized code yields *UnknownCountryError.
func (t *Table) Lookup(code string) (Rule, error) {
	normalized := NormalizeCode(code)
	rule, ok := t.rules[normalized]
	if !ok {
		return Rule{}, &UnknownCountryError{Code: code}
	}
	return rule, nil
}

// Has reports whether code is present in the table.
func (t *Table) Has(code string) bool {
	_, ok := t.rules[NormalizeCode(code)]
	return ok
}

// Codes returns all country codes in ascending order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.rules))
	for code := range t.rules {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// All returns every rule ordered by code.
func (t *Table) All() []Rule {
	codes := t.Codes()
	out := make([]Rule, 0, len(codes))
	for _, code := range codes {
		out = append(out, t.rules[code])
	}
	return out
}
