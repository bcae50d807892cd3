package engine

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// detectFillers scans one transcript and returns every filler occurrence
// ordered by token position, plus per-category and per-token tallies.
//
// Detection runs in two passes. First, adjacent-repetition runs: a token of
// at least the configured length immediately repeating counts once per run
// no matter how long the run is, and the repeated copies are withheld from
// lexicon matching so a stutter never double-counts with its own trigger
// word. Second, the lexicon pass walks the remaining tokens
// longest-match-first, so "kind of" never also registers a unigram hit.
func (e *Engine) detectFillers(transcript string) ([]FillerOccurrence, map[FillerCategory]int, map[string]int) {
	toks := tokenize(transcript)
	if len(toks) == 0 {
		return nil, nil, nil
	}

	var occs []FillerOccurrence
	consumed := make([]bool, len(toks))

	minLen := e.cfg.Fillers.MinRepetitionLen
	for i := 0; i < len(toks); {
		if utf8.RuneCountInString(toks[i]) < minLen {
			i++
			continue
		}
		j := i
		for j+1 < len(toks) && toks[j+1] == toks[i] {
			j++
		}
		if j > i {
			occs = append(occs, FillerOccurrence{Token: toks[i], Category: Repetition, Position: i + 1})
			for k := i + 1; k <= j; k++ {
				consumed[k] = true
			}
		}
		i = j + 1
	}

	for i := 0; i < len(toks); {
		if consumed[i] {
			i++
			continue
		}
		if p, ok := e.lex.matchPhrase(toks, consumed, i); ok {
			occs = append(occs, FillerOccurrence{
				Token:    strings.Join(p.words, " "),
				Category: p.category,
				Position: i,
			})
			i += len(p.words)
			continue
		}
		if cat, ok := e.lex.words[toks[i]]; ok {
			occs = append(occs, FillerOccurrence{Token: toks[i], Category: cat, Position: i})
		}
		i++
	}

	if len(occs) == 0 {
		return nil, nil, nil
	}
	sort.Slice(occs, func(a, b int) bool { return occs[a].Position < occs[b].Position })

	byCat := make(map[FillerCategory]int)
	byTok := make(map[string]int)
	for _, o := range occs {
		byCat[o.Category]++
		byTok[o.Token]++
	}
	return occs, byCat, byTok
}

// matchPhrase reports the longest phrase trigger starting at position i
// that fits entirely on unconsumed tokens.
func (l *lexicon) matchPhrase(toks []string, consumed []bool, i int) (phrase, bool) {
	for _, p := range l.byFirst[toks[i]] {
		if i+len(p.words) > len(toks) {
			continue
		}
		ok := true
		for k, w := range p.words {
			if consumed[i+k] || toks[i+k] != w {
				ok = false
				break
			}
		}
		if ok {
			return p, true
		}
	}
	return phrase{}, false
}
