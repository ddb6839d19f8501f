// Package normalize canonicalizes free-text skill, title, and location
// strings into comparable tokens for the matching engine.
package normalize

import (
	"strings"
	"unicode"
)

// Strategy is the pluggable normalization and similarity contract used
// by the matching engine. Implementations must be total: Canonicalize
// never fails, and unrecognized input comes back lowercased and
// trimmed, not rejected.
type Strategy interface {
	// Canonicalize returns the canonical lowercase token for a raw string.
	Canonicalize(raw string) string
	// IsMatch reports whether two raw strings refer to the same skill
	// after canonicalization, tolerating suffix and word-level variation.
	IsMatch(a, b string) bool
}

// defaultAliases maps common skill variants to canonical tokens.
// Compound phrases stay compound ("machine learning" is one token,
// distinct from but reachable via "ml").
var defaultAliases = map[string]string{
	"golang":           "go",
	"go lang":          "go",
	"js":               "javascript",
	"ecmascript":       "javascript",
	"ts":               "typescript",
	"k8s":              "kubernetes",
	"ml":               "machine learning",
	"ai":               "artificial intelligence",
	"postgres":         "postgresql",
	"psql":             "postgresql",
	"mongo":            "mongodb",
	"react.js":         "react",
	"reactjs":          "react",
	"vue.js":           "vue",
	"vuejs":            "vue",
	"next.js":          "next",
	"nextjs":           "next",
	"node":             "nodejs",
	"node.js":          "nodejs",
	"express.js":       "express",
	"expressjs":        "express",
	"dotnet":           ".net",
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"google cloud platform": "gcp",
	"ci/cd": "cicd",
	"ci cd": "cicd",
}

// DefaultStrategy canonicalizes via an alias table and matches on
// token-level overlap. The alias table is set at construction and never
// mutated afterwards, so a single instance is safe for concurrent use.
type DefaultStrategy struct {
	aliases map[string]string
}

// NewStrategy creates a strategy with the given alias table. A nil
// table uses the built-in defaults. The caller must not mutate the
// table after construction.
func NewStrategy(aliases map[string]string) *DefaultStrategy {
	if aliases == nil {
		aliases = defaultAliases
	}
	return &DefaultStrategy{aliases: aliases}
}

// Canonicalize returns the canonical lowercase form of a raw string:
// trimmed, punctuation stripped, known aliases expanded. It is total;
// unrecognized input returns its cleaned form unchanged.
func (s *DefaultStrategy) Canonicalize(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return ""
	}
	if canonical, ok := s.aliases[token]; ok {
		return canonical
	}

	token = stripPunctuation(token)
	if canonical, ok := s.aliases[token]; ok {
		return canonical
	}

	// ".js" suffixed names are equivalent to their base name.
	if base, ok := strings.CutSuffix(token, ".js"); ok && base != "" {
		if canonical, found := s.aliases[base]; found {
			return canonical
		}
		return base
	}

	return token
}

// IsMatch reports whether two raw skill strings refer to the same
// skill: canonical equality, a shared significant word, or one
// canonical form containing the other as a substring.
func (s *DefaultStrategy) IsMatch(a, b string) bool {
	ca := s.Canonicalize(a)
	cb := s.Canonicalize(b)
	if ca == "" || cb == "" {
		return false
	}
	if ca == cb {
		return true
	}

	// Word-level overlap: "node backend" matches "nodejs" via the
	// substring rule below, "machine learning" matches "machine learning ops"
	// via a shared significant word.
	wordsA := strings.Fields(ca)
	wordsB := strings.Fields(cb)
	for _, wa := range wordsA {
		if !significant(wa) {
			continue
		}
		for _, wb := range wordsB {
			if !significant(wb) {
				continue
			}
			if wa == wb {
				return true
			}
			if len(wa) >= minSubstringLen && strings.Contains(wb, wa) {
				return true
			}
			if len(wb) >= minSubstringLen && strings.Contains(wa, wb) {
				return true
			}
		}
	}

	return false
}

// minSubstringLen guards the substring rule against short-token false
// positives ("go" inside "django").
const minSubstringLen = 4

// significant reports whether a word carries matching signal on its own.
func significant(word string) bool {
	if len(word) < 2 {
		return false
	}
	return !connectorWords[word]
}

// connectorWords are generic filler words that never identify a skill.
var connectorWords = map[string]bool{
	"and": true, "or": true, "of": true, "the": true, "with": true,
	"for": true, "in": true, "to": true, "a": true, "an": true,
	"using": true, "experience": true, "knowledge": true,
}

// stripPunctuation lowers a token to letters, digits, spaces, and the
// characters that are load-bearing in tech names (+ # .), collapsing
// runs of whitespace.
func stripPunctuation(token string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range token {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokenize splits free text into lowercase tokens suitable for
// word-level matching. Tech suffixes like "c++", "c#", and "node.js"
// survive tokenization. Tokens shorter than two characters are dropped.
func Tokenize(text string) []string {
	cleaned := stripPunctuation(strings.ToLower(text))
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimRight(f, ".")
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CanonicalSet canonicalizes a slice of raw strings into a deduplicated
// lookup set, dropping empties.
func CanonicalSet(s Strategy, raw []string) map[string]bool {
	set := make(map[string]bool, len(raw))
	for _, r := range raw {
		if c := s.Canonicalize(r); c != "" {
			set[c] = true
		}
	}
	return set
}
