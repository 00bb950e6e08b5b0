package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// ESCO occupation codes: an ISCO group of up to four digits, optionally
	// followed by dotted occupation segments (2512, 2512.4, 2512.4.1)
	EscoCodePattern = `^\d{1,4}(\.\d+)*$`

	// ISO 3166-1 alpha-2 country code, any case
	CountryCodePattern = `^[A-Za-z]{2}$`

	// EscoMinLevel and EscoMaxLevel bound the classification hierarchy
	EscoMinLevel = 1
	EscoMaxLevel = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	EscoCode    *regexp.Regexp
	CountryCode *regexp.Regexp
}{
	EscoCode:    regexp.MustCompile(EscoCodePattern),
	CountryCode: regexp.MustCompile(CountryCodePattern),
}

// IsEscoCode reports whether s looks like an ESCO occupation code
func IsEscoCode(s string) bool {
	return CompiledPatterns.EscoCode.MatchString(strings.TrimSpace(s))
}

// IsCountryCode reports whether s is a two letter country code
func IsCountryCode(s string) bool {
	return CompiledPatterns.CountryCode.MatchString(s)
}

// EscoLevel returns the hierarchy level of a code: the digit count for
// ISCO groups, four plus the number of dotted segments otherwise.
func EscoLevel(code string) int {
	parts := strings.Split(code, ".")
	if len(parts) == 1 {
		return len(parts[0])
	}
	return 4 + len(parts) - 1
}

// RegisterRules adds the custom tags used by the query DTOs
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("esco_code", func(fl validator.FieldLevel) bool {
		return IsEscoCode(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("country_code", func(fl validator.FieldLevel) bool {
		return IsCountryCode(fl.Field().String())
	})
}
