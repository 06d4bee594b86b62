package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/chatter"
	"go-sentinel/handlers"
	"go-sentinel/signal"
)

// SetupRouter wires the handlers to their collaborators. counter may be nil
// when live chatter is disabled.
func SetupRouter(src signal.Source, adv handlers.Recommender, counter *chatter.Counter) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hello, welcome to Sentinel!",
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// api routes
	api := r.Group("/api/sentinel")
	{
		api.GET("/threat", func(c *gin.Context) {
			handlers.GetThreatAnalysis(c, src, adv)
		})
		api.GET("/diseases", handlers.ListDiseases)
		api.POST("/recommend", func(c *gin.Context) {
			handlers.GenerateRecommendation(c, adv)
		})
		api.GET("/chatter", func(c *gin.Context) {
			handlers.ProbeChatter(c, counter)
		})
	}

	return r
}
