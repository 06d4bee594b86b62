package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-sentinel/chatter"
	"go-sentinel/types"
)

const chatterProbeTimeout = 10 * time.Second

// ProbeChatter checks the live social-mention count for a query. Diagnostic
// endpoint; the threat pipeline itself never hard-fails on this upstream.
func ProbeChatter(c *gin.Context, counter *chatter.Counter) {
	if counter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live chatter is disabled"})
		return
	}

	disease := c.DefaultQuery("disease", types.DefaultDisease)
	city := c.DefaultQuery("city", types.DefaultCity)
	profile, _ := types.ProfileFor(disease)

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatterProbeTimeout)
	defer cancel()

	count, err := counter.Count(ctx, profile.DisplayName, city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disease":       profile.Slug,
		"city":          city,
		"mention_count": count,
	})
}
