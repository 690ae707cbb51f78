package handlers

import (
	"net/http"

	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/SscSPs/growth_estimator/internal/core/growth"
	"github.com/gin-gonic/gin"
)

// getForces godoc
// @Summary List the five-forces model
// @Description Returns the force names accepted as weight keys and their default coefficients
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /forces [get]
func getForces(ctx *gin.Context) {
	coefficients := growth.DefaultCoefficients()
	forces := make([]gin.H, 0, len(domain.AllForces))
	for _, f := range domain.AllForces {
		forces = append(forces, gin.H{"name": f, "coefficient": coefficients[f]})
	}
	ctx.JSON(http.StatusOK, gin.H{
		"forces":        forces,
		"maxForceValue": growth.MaxForceValue,
	})
}

// registerHomeRoutes registers the informational routes
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/forces", getForces)
}
