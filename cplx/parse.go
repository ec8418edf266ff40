// SPDX-License-Identifier: MIT

// Package cplx - text grammar for Complex.
//
// Accepted forms (no interior whitespace; surrounding whitespace is trimmed):
//
//	a        real only:        "2", "-1.5", "3e8"
//	bi       imaginary only:   "3i", "-i", "i", "2.5e-3i"
//	a±bi     both, any order:  "2+3i", "2-3i", "3i+2", "1e-3-1e+2i"
//
// a and b are decimal float literals accepted by strconv.ParseFloat that are
// finite. A '+' or '-' directly after 'e'/'E' is an exponent sign, not a term
// separator. Everything else is ErrParse.

package cplx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	imagUnit  = "i"
	maxTerms  = 2
	termPlus  = '+'
	termMinus = '-'
)

// parseErrorf reports why text was rejected; the result matches ErrParse.
func parseErrorf(text, reason string) error {
	return fmt.Errorf("%s(%q): %s: %w", opParse, text, reason, ErrParse)
}

// Parse reads a Complex from text.
//
// Implementation:
//   - Stage 1: trim, reject empty input.
//   - Stage 2: split into signed terms at '+'/'-' that are not exponent signs.
//   - Stage 3: classify each term by the trailing 'i'; at most one real and
//     one imaginary term.
//
// Errors:
//   - ErrParse (wrapped with the input and the reason).
//
// Complexity: O(len(text)).
func Parse(text string) (Complex, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Complex{}, parseErrorf(text, "empty input")
	}

	terms := splitTerms(s)
	if len(terms) > maxTerms {
		return Complex{}, parseErrorf(text, "too many terms")
	}

	var (
		z              Complex
		haveRe, haveIm bool
	)
	for _, term := range terms {
		if strings.HasSuffix(term, imagUnit) {
			if haveIm {
				return Complex{}, parseErrorf(text, "duplicate imaginary term")
			}
			v, err := parseCoefficient(strings.TrimSuffix(term, imagUnit))
			if err != nil {
				return Complex{}, parseErrorf(text, "invalid imaginary part "+strconv.Quote(term))
			}
			z.Im, haveIm = v, true

			continue
		}
		if haveRe {
			return Complex{}, parseErrorf(text, "duplicate real term")
		}
		v, err := parseFinite(term)
		if err != nil {
			return Complex{}, parseErrorf(text, "invalid real part "+strconv.Quote(term))
		}
		z.Re, haveRe = v, true
	}

	return z, nil
}

// MustParse is Parse that panics on error. Intended for literals in tests
// and package-level variables.
func MustParse(text string) Complex {
	z, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return z
}

// splitTerms cuts s before every sign that is not an exponent sign.
// A leading sign stays attached to the first term.
func splitTerms(s string) []string {
	terms := make([]string, 0, maxTerms)
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] != termPlus && s[i] != termMinus {
			continue
		}
		if prev := s[i-1]; prev == 'e' || prev == 'E' {
			continue
		}
		terms = append(terms, s[start:i])
		start = i
	}

	return append(terms, s[start:])
}

// parseCoefficient parses the coefficient of i; a bare sign means ±1.
func parseCoefficient(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}

	return parseFinite(s)
}

// parseFinite is strconv.ParseFloat restricted to finite values.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrParse
	}

	return v, nil
}
