package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// getMe godoc
// @Summary Show the authenticated caller
// @Description Returns the identity the engine acts on behalf of
// @Tags root
// @Produce json
// @Success 200 {object} domain.Actor
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /me [get]
func getMe(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, actor)
}
