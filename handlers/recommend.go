package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/advisor"
	"go-sentinel/scoring"
	"go-sentinel/types"
)

// GenerateRecommendation produces advisory text for an already-known score,
// without rerunning the signal pipeline.
func GenerateRecommendation(c *gin.Context, adv Recommender) {
	var request struct {
		Disease string `json:"disease"`
		City    string `json:"city"`
		Score   int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Score < 1 {
		request.Score = 1
	}
	if request.Score > 10 {
		request.Score = 10
	}

	profile, _ := types.ProfileFor(request.Disease)
	city := request.City
	if city == "" {
		city = types.DefaultCity
	}
	level := scoring.Classify(request.Score)

	recommendation, source := adv.Recommend(c.Request.Context(), advisor.Request{
		Disease: profile.DisplayName,
		City:    city,
		Score:   request.Score,
		Level:   level,
	})

	c.JSON(http.StatusOK, gin.H{
		"threat_level":          level,
		"recommendation":        recommendation,
		"recommendation_source": source,
	})
}
