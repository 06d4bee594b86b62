package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/types"
)

// ListDiseases feeds the dashboard's disease selector.
func ListDiseases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"diseases": types.Profiles(),
		"default":  types.DefaultDisease,
	})
}
