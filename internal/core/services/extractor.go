package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

// Extract computes the flavour profile of element using the name list
// selected by its flag.
//
// Every character of the digit string is one count. The result holds
// count/sum per category name. Nothing is clamped or rejected:
//   - a non-digit character makes its slot NaN, and therefore every value NaN
//   - an all-zero string divides by zero, so every value is NaN
//   - positions past the end of the name list are keyed by ""
//
// Use ExtractStrict to turn those conditions into errors.
func Extract(element domain.SourceElement, names domain.NameLists) domain.FlavourProfile {
	return Normalise(ParseCounts(element.Digits), names.Select(element.Flag))
}

// ParseCounts reads each rune of digits as a separate base-10 digit.
func ParseCounts(digits string) domain.RawCounts {
	counts := make(domain.RawCounts, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			counts = append(counts, math.NaN())
			continue
		}
		counts = append(counts, float64(r-'0'))
	}
	return counts
}

// Normalise divides every count by the total and keys it by the name at
// the same position. Counts sharing a key are added up before dividing.
func Normalise(counts domain.RawCounts, names domain.NameList) domain.FlavourProfile {
	profile := make(domain.FlavourProfile, len(counts))

	var sum float64
	for i, v := range counts {
		profile[nameAt(names, i)] += v
		sum += v
	}

	for k, v := range profile {
		profile[k] = v / sum
	}
	return profile
}

// nameAt returns the i-th name, or "" past the end of the list.
func nameAt(names domain.NameList, i int) string {
	if i < len(names) {
		return names[i]
	}
	return ""
}

// Validate reports every condition under which Extract would produce NaN
// values or unnamed keys. The returned error wraps the matching domain
// sentinels and is nil for a well-formed element.
func Validate(element domain.SourceElement, names domain.NameLists) error {
	var (
		errs  []error
		n     int
		sum   int
		valid = true
	)

	for _, r := range element.Digits {
		if r < '0' || r > '9' {
			if valid {
				errs = append(errs, fmt.Errorf("%w: %q at position %d", domain.ErrMalformedDigit, r, n))
			}
			valid = false
		} else {
			sum += int(r - '0')
		}
		n++
	}

	list := names.Select(element.Flag)
	if n > len(list) {
		errs = append(errs, fmt.Errorf("%w: %d digits, %d names", domain.ErrNameListTooShort, n, len(list)))
	}

	if valid && sum == 0 {
		errs = append(errs, domain.ErrZeroTotal)
	}

	return errors.Join(errs...)
}

// ExtractStrict validates element before extracting it.
func ExtractStrict(element domain.SourceElement, names domain.NameLists) (domain.FlavourProfile, error) {
	if err := Validate(element, names); err != nil {
		return nil, err
	}
	return Extract(element, names), nil
}
