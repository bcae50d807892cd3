package engine

import (
	"sort"
	"strings"
	"unicode"
)

// phrase is a fixed multi-word trigger owned by one category.
type phrase struct {
	words    []string
	category FillerCategory
}

// lexicon is the trigger table driving filler classification. Phrase
// triggers win over the single-word triggers they subsume; per starting
// position the longest phrase is tried first.
type lexicon struct {
	byFirst map[string][]phrase
	words   map[string]FillerCategory
}

var defaultWords = map[FillerCategory][]string{
	DiscourseMarker: {
		"uh", "um", "er", "ah", "eh", "mm", "hmm",
		"like", "right", "okay",
		"so", "now", "well", "then", "anyway", "anyhow",
	},
	Intensifier: {
		"literally", "actually", "really", "totally", "absolutely", "definitely",
	},
	Stalling: {
		"basically", "essentially",
	},
}

var defaultPhrases = map[FillerCategory][]string{
	DiscourseMarker: {"you know", "i mean", "you see"},
	Stalling:        {"sort of", "kind of", "pretty much", "more or less"},
}

func newLexicon() *lexicon {
	lex := &lexicon{
		byFirst: make(map[string][]phrase),
		words:   make(map[string]FillerCategory),
	}
	for cat, list := range defaultWords {
		for _, w := range list {
			lex.words[w] = cat
		}
	}
	for cat, list := range defaultPhrases {
		for _, p := range list {
			parts := strings.Fields(p)
			lex.byFirst[parts[0]] = append(lex.byFirst[parts[0]], phrase{words: parts, category: cat})
		}
	}
	for first := range lex.byFirst {
		ps := lex.byFirst[first]
		sort.Slice(ps, func(i, j int) bool { return len(ps[i].words) > len(ps[j].words) })
	}
	return lex
}

// tokenize lowercases the transcript and splits it into word tokens,
// keeping internal apostrophes so "don't" stays one token.
func tokenize(text string) []string {
	var toks []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			toks = append(toks, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return toks
}
