package domain

import (
	"encoding/json"
	"math"
	"sort"
)

// TobaccoFlag is the flag value that selects the tobacco aroma names.
const TobaccoFlag = "t"

// RawCounts holds one count per category, index-aligned with a NameList.
// A slot whose source character was not a digit holds NaN.
type RawCounts []float64

// NameList is an ordered sequence of category names.
type NameList []string

// NameLists carries both category name variants.
type NameLists struct {
	// Tobacco are the tobacco aroma names, selected by TobaccoFlag.
	Tobacco NameList `json:"tobacco"`

	// General are the general aroma names, selected by any other flag.
	General NameList `json:"general"`
}

// Select returns the list the flag refers to.
func (n NameLists) Select(flag string) NameList {
	if flag == TobaccoFlag {
		return n.Tobacco
	}
	return n.General
}

// Complete reports whether both lists are populated.
func (n NameLists) Complete() bool {
	return len(n.Tobacco) > 0 && len(n.General) > 0
}

// SourceElement is the pair of attribute values read off the source element.
type SourceElement struct {
	// Flag is the data-rub value; "t" selects tobacco names.
	Flag string `json:"flag"`

	// Digits is the data-content value, one decimal digit per category.
	Digits string `json:"digits"`
}

// FlavourProfile maps a category name to its share of the total count.
type FlavourProfile map[string]float64

// Names returns the category names sorted alphabetically.
func (p FlavourProfile) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Total returns the sum of all proportions.
func (p FlavourProfile) Total() float64 {
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum
}

// Valid reports whether no proportion is NaN.
func (p FlavourProfile) Valid() bool {
	for _, v := range p {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// MarshalJSON writes NaN proportions as null, which plain float encoding rejects.
func (p FlavourProfile) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	out := make(map[string]*float64, len(p))
	for name, v := range p {
		if math.IsNaN(v) {
			out[name] = nil
			continue
		}
		out[name] = &v
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads null proportions back as NaN.
func (p *FlavourProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}
	out := make(FlavourProfile, len(raw))
	for name, v := range raw {
		if v == nil {
			out[name] = math.NaN()
			continue
		}
		out[name] = *v
	}
	*p = out
	return nil
}
