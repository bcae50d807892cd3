package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewlab/fluency-pipeline/config"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.Default(), nil)
	require.NoError(t, err)
	return e
}

func TestDetectFillers_CategorySumsMatchTotal(t *testing.T) {
	e := newTestEngine(t)

	occs, byCat, byTok := e.detectFillers("Well, I actually think, you know, it was kind of hard hard work")

	total := 0
	for _, n := range byCat {
		total += n
	}
	assert.Equal(t, len(occs), total, "per-category counts must sum to the total")

	total = 0
	for _, n := range byTok {
		total += n
	}
	assert.Equal(t, len(occs), total, "per-token counts must sum to the total")
}

func TestDetectFillers_PhraseSubsumesSingleWords(t *testing.T) {
	e := newTestEngine(t)

	occs, byCat, _ := e.detectFillers("it was kind of difficult")

	require.Len(t, occs, 1)
	assert.Equal(t, "kind of", occs[0].Token)
	assert.Equal(t, Stalling, occs[0].Category)
	assert.Equal(t, 1, byCat[Stalling])
}

func TestDetectFillers_LongestPhraseWins(t *testing.T) {
	e := newTestEngine(t)

	occs, _, _ := e.detectFillers("it is more or less done")

	require.Len(t, occs, 1)
	assert.Equal(t, "more or less", occs[0].Token)
	assert.Equal(t, Stalling, occs[0].Category)
}

func TestDetectFillers_RepetitionRunCountsOnce(t *testing.T) {
	e := newTestEngine(t)

	occs, byCat, _ := e.detectFillers("i really really really enjoyed it")

	assert.Equal(t, 1, byCat[Intensifier], "first copy still matches the lexicon")
	assert.Equal(t, 1, byCat[Repetition], "a three-long run is one repetition")
	assert.Len(t, occs, 2)
}

func TestDetectFillers_TwoSeparateRuns(t *testing.T) {
	e := newTestEngine(t)

	_, byCat, _ := e.detectFillers("the the project and the team team worked")

	assert.Equal(t, 2, byCat[Repetition])
}

func TestDetectFillers_ShortTokensNeverRepeat(t *testing.T) {
	e := newTestEngine(t)

	occs, byCat, _ := e.detectFillers("so so so")

	assert.Equal(t, 3, byCat[DiscourseMarker])
	assert.Zero(t, byCat[Repetition], "two-rune tokens are below the repetition length floor")
	assert.Len(t, occs, 3)
}

func TestDetectFillers_CaseInsensitive(t *testing.T) {
	e := newTestEngine(t)

	_, byCat, byTok := e.detectFillers("Well, ACTUALLY, You Know...")

	assert.Equal(t, 2, byCat[DiscourseMarker])
	assert.Equal(t, 1, byCat[Intensifier])
	assert.Equal(t, 1, byTok["you know"])
}

func TestDetectFillers_PositionsOrderedAndUnique(t *testing.T) {
	e := newTestEngine(t)

	occs, _, _ := e.detectFillers("well i was like really really sure you know about it basically")

	require.NotEmpty(t, occs)
	for i := 1; i < len(occs); i++ {
		assert.Greater(t, occs[i].Position, occs[i-1].Position)
	}
}

func TestDetectFillers_EmptyTranscript(t *testing.T) {
	e := newTestEngine(t)

	occs, byCat, byTok := e.detectFillers("")

	assert.Nil(t, occs)
	assert.Nil(t, byCat)
	assert.Nil(t, byTok)
}

func TestDetectFillers_CleanTranscript(t *testing.T) {
	e := newTestEngine(t)

	occs, _, _ := e.detectFillers("my background is in distributed systems and databases")

	assert.Empty(t, occs)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"don't", "panic"}, tokenize("Don't panic!"))
	assert.Equal(t, []string{"kind", "of", "hard"}, tokenize("kind of... hard?"))
	assert.Empty(t, tokenize("  ...  "))
}
