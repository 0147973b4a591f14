package handler

import (
	"github.com/gin-gonic/gin"

	"meme-market/internal/realtime"
)

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// ServeWSHandler handles GET /ws: upgrades the connection and hands it
// to the realtime hub. Topic membership is managed by the client over
// the socket itself.
func (h *WSHandler) ServeWSHandler(c *gin.Context) {
	realtime.ServeWS(h.hub, c.Writer, c.Request)
}
