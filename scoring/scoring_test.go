package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-sentinel/types"
)

func sigWith(peak, mentions int) types.Signal {
	return types.Signal{
		Series:       []types.KeywordSeries{{Label: "kw", Data: []int{peak}}},
		MentionCount: mentions,
	}
}

func TestScoreStaysInRange(t *testing.T) {
	for peak := 0; peak <= 100; peak += 5 {
		for mentions := 0; mentions <= 200; mentions += 10 {
			score := Score(sigWith(peak, mentions))
			assert.GreaterOrEqual(t, score, 1, "peak=%d mentions=%d", peak, mentions)
			assert.LessOrEqual(t, score, 10, "peak=%d mentions=%d", peak, mentions)
		}
	}
}

func TestScoreEmptySignal(t *testing.T) {
	assert.Equal(t, 1, Score(types.Signal{}))
}

func TestScoreWorkedExample(t *testing.T) {
	// mentions=80, peak=90 -> 0.7*90 + 0.3*80 = 87 -> score 9 -> High
	score := Score(sigWith(90, 80))
	assert.Equal(t, 9, score)
	assert.Equal(t, types.LevelHigh, Classify(score))
}

func TestScoreMonotonicInPeak(t *testing.T) {
	prev := 0
	for peak := 0; peak <= 100; peak++ {
		score := Score(sigWith(peak, 30))
		assert.GreaterOrEqual(t, score, prev, "peak=%d", peak)
		prev = score
	}
}

func TestScoreMonotonicInMentions(t *testing.T) {
	prev := 0
	for mentions := 0; mentions <= 150; mentions++ {
		score := Score(sigWith(40, mentions))
		assert.GreaterOrEqual(t, score, prev, "mentions=%d", mentions)
		prev = score
	}
}

func TestClassifyPartitionsScoreRange(t *testing.T) {
	expected := map[int]types.ThreatLevel{
		1: types.LevelLow, 2: types.LevelLow, 3: types.LevelLow,
		4: types.LevelGuarded, 5: types.LevelGuarded,
		6: types.LevelElevated, 7: types.LevelElevated,
		8: types.LevelHigh, 9: types.LevelHigh, 10: types.LevelHigh,
	}
	for score, want := range expected {
		assert.Equal(t, want, Classify(score), "score=%d", score)
	}
}

func TestActionItemDefinedForEveryLevel(t *testing.T) {
	levels := []types.ThreatLevel{types.LevelLow, types.LevelGuarded, types.LevelElevated, types.LevelHigh}
	seen := map[string]bool{}
	for _, level := range levels {
		item := ActionItem(level)
		assert.NotEmpty(t, item)
		assert.False(t, seen[item], "action item reused for %s", level)
		seen[item] = true
	}
}

func flatSeries(days, baseline, lastWeek int) types.Signal {
	data := make([]int, days)
	for i := range data {
		if i >= days-7 {
			data[i] = lastWeek
		} else {
			data[i] = baseline
		}
	}
	return types.Signal{Series: []types.KeywordSeries{{Label: "kw", Data: data}}}
}

func TestSpikePctFlatSeriesIsZero(t *testing.T) {
	assert.Equal(t, 0.0, SpikePct(flatSeries(30, 50, 50)))
}

func TestSpikePctRisingLastWeek(t *testing.T) {
	// baseline 10, last week 40 -> 300% increase
	assert.InDelta(t, 300.0, SpikePct(flatSeries(30, 10, 40)), 0.001)
}

func TestSpikePctDecliningFloorsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, SpikePct(flatSeries(30, 60, 20)))
}

func TestSpikePctZeroBaseline(t *testing.T) {
	// Any current traffic over a silent baseline counts double.
	assert.InDelta(t, 40.0, SpikePct(flatSeries(30, 0, 20)), 0.001)
}

func TestSpikePctShortSeriesUsesFallbackBaseline(t *testing.T) {
	sig := types.Signal{Series: []types.KeywordSeries{{Label: "kw", Data: []int{20, 20, 20}}}}
	assert.InDelta(t, 100.0, SpikePct(sig), 0.001)
}

func TestSpikePctEmptySignal(t *testing.T) {
	assert.Equal(t, 0.0, SpikePct(types.Signal{}))
}
