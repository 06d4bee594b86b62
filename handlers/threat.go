package handlers

import (
	"context"
	"log"
	"net/http"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-sentinel/advisor"
	"go-sentinel/scoring"
	"go-sentinel/signal"
	"go-sentinel/types"
)

// Recommender is what the handlers need from the advisor: text plus where
// it came from, on every call, no error.
type Recommender interface {
	Recommend(ctx context.Context, req advisor.Request) (string, string)
}

// GetThreatAnalysis runs the whole pipeline for one query: default the
// parameters, fetch a signal, score it, classify it, ask for a
// recommendation, and assemble the report. It always answers 200; the only
// external call degrades to fallback text instead of failing the request.
func GetThreatAnalysis(c *gin.Context, src signal.Source, adv Recommender) {
	disease := c.DefaultQuery("disease", types.DefaultDisease)
	city := c.DefaultQuery("city", types.DefaultCity)
	geo := c.DefaultQuery("geo", types.DefaultGeo)

	// A present-but-empty parameter still gets the default.
	if city == "" {
		city = types.DefaultCity
	}
	if geo == "" {
		geo = types.DefaultGeo
	}

	profile, known := types.ProfileFor(disease)
	if !known {
		log.Printf("Unknown disease %q requested, defaulting to %s", disease, profile.Slug)
	}

	ctx := c.Request.Context()
	sig, err := src.Signal(ctx, profile, city, geo)
	if err != nil {
		// The configured source failed; a bare synthesizer cannot.
		log.Printf("Signal source failed for %s/%s, regenerating synthetically: %v", profile.Slug, city, err)
		sig, _ = signal.NewSynthesizer().Signal(ctx, profile, city, geo)
	}

	score := scoring.Score(sig)
	level := scoring.Classify(score)

	recommendation, source := adv.Recommend(ctx, advisor.Request{
		Disease: profile.DisplayName,
		City:    city,
		Score:   score,
		Level:   level,
	})

	report := types.ThreatReport{
		ID:                   uuid.NewString(),
		Disease:              profile.DisplayName,
		City:                 capitalize(city),
		Geo:                  geo,
		ThreatScore:          score,
		ThreatLevel:          level,
		SpikePct:             scoring.SpikePct(sig),
		ActionItem:           scoring.ActionItem(level),
		Recommendation:       recommendation,
		RecommendationSource: source,
		ChartData: types.ChartData{
			Labels:   sig.Labels,
			Datasets: sig.Series,
		},
		GeneratedAt: sig.GeneratedAt.UTC().Format(time.RFC3339),
	}

	log.Printf("Threat analysis for %s/%s: level=%s score=%d source=%s", profile.Slug, city, level, score, source)
	c.JSON(http.StatusOK, report)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
