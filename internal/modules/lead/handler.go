package lead

import (
	"errors"
	"net/http"
	"strconv"

	"buyerleads/internal/middleware"
	"buyerleads/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for buyer leads
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	leads := protected.Group("/leads")
	{
		leads.POST("", h.Create)
		leads.GET("", h.List)
		leads.GET("/stats", h.Stats)
		leads.GET("/:id", h.Get)
		leads.PATCH("/:id", h.Update)
		leads.DELETE("/:id", h.Delete)
	}
}

// RegisterLegacyRoutes keeps the original flat POST /api/buyers surface
// alive: {message} on success, {error} on failure.
func (h *Handler) RegisterLegacyRoutes(api *gin.RouterGroup) {
	api.POST("/buyers", h.CreateLegacy)
}

func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "not logged in")
		return
	}

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fieldErrors := req.Validate(); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Lead failed validation", fieldErrors)
		return
	}

	l, err := h.service.Create(c.Request.Context(), identity.OwnerExternalID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": l})
}

// CreateLegacy mirrors Create over the pre-v1 response shape.
func (h *Handler) CreateLegacy(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		response.LegacyError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.LegacyError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if fieldErrors := req.Validate(); fieldErrors != nil {
		for _, msg := range fieldErrors {
			response.LegacyError(c, http.StatusBadRequest, msg)
			return
		}
	}

	if _, err := h.service.Create(c.Request.Context(), identity.OwnerExternalID, req); err != nil {
		response.LegacyError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.LegacyMessage(c, http.StatusOK, "Buyer created successfully!")
}

func (h *Handler) List(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "not logged in")
		return
	}

	scope := c.DefaultQuery("scope", "all")

	var leads interface{}
	var err error
	switch scope {
	case "mine":
		leads, err = h.service.ListMine(c.Request.Context(), identity.OwnerExternalID)
	case "all":
		leads, err = h.service.ListAll(c.Request.Context(), c.Query("q"))
	default:
		response.Error(c, http.StatusBadRequest, "INVALID_SCOPE", "scope must be 'mine' or 'all'")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leads": leads})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	l, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fieldErrors := req.Validate(); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Lead failed validation", fieldErrors)
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) Stats(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "not logged in")
		return
	}

	owner := ""
	if c.DefaultQuery("scope", "all") == "mine" {
		owner = identity.OwnerExternalID
	}

	stats, err := h.service.Stats(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func leadID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return 0, false
	}
	return id, true
}
