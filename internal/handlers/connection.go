package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type ConnectionHandler struct {
	connectionService *services.ConnectionService
}

func NewConnectionHandler(connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// ListConnections returns the connections of the client in the path
func (h *ConnectionHandler) ListConnections(c *gin.Context) {
	connections, err := h.connectionService.ListByClient(c.Param("clientId"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, connections)
}

// CreateConnection records a connection between a client and a freelancer
func (h *ConnectionHandler) CreateConnection(c *gin.Context) {
	type CreateConnectionRequest struct {
		ClientID     string `json:"clientId" binding:"required"`
		FreelancerID string `json:"freelancerId" binding:"required"`
	}

	var req CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	connection, err := h.connectionService.Create(req.ClientID, req.FreelancerID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, connection)
}
