// Package scoring turns a signal into a 1-10 threat score and a banded
// threat level. Everything here is pure: no clients, no state.
package scoring

import (
	"math"

	"go-sentinel/types"
)

const (
	trendWeight   = 0.7
	chatterWeight = 0.3

	minScore = 1
	maxScore = 10

	// Band cut points over the score range.
	lowMax      = 3
	guardedMax  = 5
	elevatedMax = 7

	spikeWindow = 7
	// Used when the series is too short to split out a baseline window.
	fallbackBaseline = 10.0
)

// Score computes the composite threat score: the peak interest index
// weighted against the (capped) mention count, mapped onto [1,10].
// Monotone in both inputs and defined for every signal.
func Score(sig types.Signal) int {
	peak := 0
	for _, ks := range sig.Series {
		for _, v := range ks.Data {
			if v > peak {
				peak = v
			}
		}
	}
	if peak > 100 {
		peak = 100
	}

	mentions := sig.MentionCount
	if mentions < 0 {
		mentions = 0
	}
	if mentions > 100 {
		mentions = 100
	}

	composite := trendWeight*float64(peak) + chatterWeight*float64(mentions)
	score := int(math.Ceil(composite / 10))
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// SpikePct reports how far the last week of combined interest sits above
// the preceding baseline, as a percentage floored at zero. Display only;
// the score itself comes from Score.
func SpikePct(sig types.Signal) float64 {
	n := 0
	for _, ks := range sig.Series {
		if len(ks.Data) > n {
			n = len(ks.Data)
		}
	}
	if n == 0 {
		return 0
	}

	daily := make([]float64, n)
	for _, ks := range sig.Series {
		for i, v := range ks.Data {
			daily[i] += float64(v)
		}
	}

	split := n - spikeWindow
	var baseline float64
	if split <= 0 {
		baseline = fallbackBaseline
		split = 0
	} else {
		for _, v := range daily[:split] {
			baseline += v
		}
		baseline /= float64(split)
	}

	var current float64
	for _, v := range daily[split:] {
		current += v
	}
	current /= float64(n - split)

	if baseline <= 0 {
		// No baseline traffic at all: any current traffic is a big signal.
		return current * 2
	}
	pct := (current - baseline) / baseline * 100
	if pct < 0 {
		return 0
	}
	return pct
}

// Classify maps a score onto the four threat bands. The bands partition
// [1,10]: 1-3 Low, 4-5 Guarded, 6-7 Elevated, 8-10 High.
func Classify(score int) types.ThreatLevel {
	switch {
	case score <= lowMax:
		return types.LevelLow
	case score <= guardedMax:
		return types.LevelGuarded
	case score <= elevatedMax:
		return types.LevelElevated
	default:
		return types.LevelHigh
	}
}

// ActionItem is the canned operational instruction for a level. It doubles
// as the static recommendation when the generative model is unreachable.
func ActionItem(level types.ThreatLevel) string {
	switch level {
	case types.LevelHigh:
		return "ACTION: High threat detected. Recommend immediate public advisory and resource mobilization to hospitals."
	case types.LevelElevated:
		return "ALERT: Elevated search interest. Recommend alerting clinics and launching a preventative awareness campaign."
	case types.LevelGuarded:
		return "WATCH: Search interest is above baseline. Monitor data daily and check pharmacy supplies."
	default:
		return "INFO: Normal background chatter. No immediate action required."
	}
}
