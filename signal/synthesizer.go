package signal

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"go-sentinel/types"
)

// Source produces the outbreak signal for a query. The synthesizer below is
// the placeholder implementation; a real trend feed can be swapped in (or
// layered on top) without touching score or level logic.
type Source interface {
	Signal(ctx context.Context, profile types.DiseaseProfile, city, geo string) (types.Signal, error)
}

const (
	defaultDays = 30
	spikeWindow = 7 // last week of the series may carry the surge
	maxIndex    = 100

	minMentions = 5
	maxMentions = 50
)

// Synthesizer fabricates plausible interest series and mention counts. It
// makes no external calls and is deterministic per (disease, city, geo), so
// repeating a query reproduces the exact same signal.
type Synthesizer struct {
	days  int
	clock func() time.Time
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{days: defaultDays, clock: time.Now}
}

func (s *Synthesizer) Signal(_ context.Context, profile types.DiseaseProfile, city, geo string) (types.Signal, error) {
	rng := rand.New(rand.NewSource(querySeed(profile.Slug, city, geo)))

	now := s.clock()
	labels := make([]string, s.days)
	start := now.AddDate(0, 0, -(s.days - 1))
	for i := range labels {
		labels[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}

	// How hard this query is surging. Some (disease, city) pairs are quiet,
	// others are mid-outbreak; the seed decides which.
	surge := rng.Float64()

	series := make([]types.KeywordSeries, 0, len(profile.Keywords))
	for _, kw := range profile.Keywords {
		base := float64(10+rng.Intn(30)) * profile.BaselineFactor
		data := make([]int, s.days)
		level := base
		for i := 0; i < s.days; i++ {
			level += float64(rng.Intn(9) - 4)
			if level < 0 {
				level = 0
			}
			v := level
			if i >= s.days-spikeWindow {
				// Ramp the surge in across the spike window.
				ramp := float64(i-(s.days-spikeWindow)+1) / spikeWindow
				v += surge * base * 2 * ramp
			}
			data[i] = clampIndex(int(math.Round(v)))
		}
		series = append(series, types.KeywordSeries{Label: kw, Data: data})
	}

	mentions := minMentions + rng.Intn(maxMentions-minMentions+1)
	// Chatter rises with the surge.
	mentions = int(float64(mentions) * (1 + surge))

	return types.Signal{
		Disease:      profile.Slug,
		City:         city,
		Geo:          geo,
		Labels:       labels,
		Series:       series,
		MentionCount: mentions,
		GeneratedAt:  now,
	}, nil
}

func clampIndex(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxIndex {
		return maxIndex
	}
	return v
}

// querySeed hashes the query key so the same query always draws the same
// pseudo-random signal.
func querySeed(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{'|'})
	}
	return int64(h.Sum64())
}
