package notify

import (
	"net/http"

	"buyerleads/internal/middleware"
	"buyerleads/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// origin policy is enforced by the CORS middleware
		return true
	},
}

// Handler upgrades an authenticated request to a notification socket.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/notifications/ws", h.Connect)
}

func (h *Handler) Connect(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "not logged in")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(identity.OwnerExternalID, conn)
	defer h.hub.Unregister(identity.OwnerExternalID)

	// the socket is push-only; drain reads until the client hangs up
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
