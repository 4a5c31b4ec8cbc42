package launch

import (
	"math"
	"strings"
)

// Match weights. Each rule has a distinct weight so a test (or a
// curious user reading debug output) can tell which rule fired.
const (
	fullKeywordWeight   = 100
	fullNameWeight      = 10
	fullTagWeight       = 6
	startsWithTagWeight = 4
	partialNameWeight   = 3
	partialTagWeight    = 2
)

// Score ranks the entry against a free-text query.
//
// The query is split on whitespace into tokens that are ANDed together:
// each token is scored against the name and every tag, the best rule
// wins per token, and the minimum across tokens is the token score. A
// keyword entry additionally gets a flat bonus when the first token
// equals its keyword; the final score is the larger of the two.
//
// An all-lowercase query matches case-insensitively ("smartcase");
// any uppercase character makes the whole comparison literal.
func (e *Entry) Score(query string) int {
	fold := identity
	if query == strings.ToLower(query) {
		fold = strings.ToUpper
	}

	tokens := strings.Fields(fold(query))
	if len(tokens) == 0 || tokens[0] == "" {
		return 0
	}

	name := fold(e.Name)
	tags := make([]string, len(e.Tags))
	for i, t := range e.Tags {
		tags[i] = fold(t)
	}

	keywordScore := 0
	if e.KeywordMode != KeywordNone && fold(e.Keyword) == tokens[0] {
		keywordScore = fullKeywordWeight
	}

	tokenScore := math.MaxInt
	for _, tok := range tokens {
		tokenScore = min(tokenScore, tokenMatch(name, tags, tok))
	}

	return max(tokenScore, keywordScore)
}

// tokenMatch scores a single token: the maximum over all match rules.
func tokenMatch(name string, tags []string, tok string) int {
	best := 0
	if name == tok {
		best = max(best, fullNameWeight)
	}
	if strings.Contains(name, tok) {
		best = max(best, partialNameWeight)
	}
	for _, tag := range tags {
		if tag == tok {
			best = max(best, fullTagWeight)
		}
		if strings.HasPrefix(tag, tok) {
			best = max(best, startsWithTagWeight)
		}
		if strings.Contains(tag, tok) {
			best = max(best, partialTagWeight)
		}
	}
	return best
}

func identity(s string) string { return s }
