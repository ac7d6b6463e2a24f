package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoints onto the given route group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
}
