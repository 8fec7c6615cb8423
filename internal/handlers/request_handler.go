package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/exists", h.CheckExists)
		requests.GET("/:requestId", h.GetRequest)
		requests.PUT("/:requestId/status", h.UpdateStatus)
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	learnerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.requestService.CreateRequest(learnerID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request sent successfully"})
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	direction := c.Query("type")

	requests, err := h.requestService.ListRequests(userID, direction)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

func (h *RequestHandler) CheckExists(c *gin.Context) {
	learnerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	skillID := c.Query("skill_id")
	if skillID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: skill_id"))
		return
	}

	exists, err := h.requestService.HasRequested(learnerID, skillID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestExistsResponse{Exists: exists})
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	requestID := c.Param("requestId")

	detail, err := h.requestService.GetRequest(userID, requestID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	mentorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	requestID := c.Param("requestId")

	var req dto.UpdateRequestStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.requestService.UpdateStatus(mentorID, requestID, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request " + string(req.Status)})
}
