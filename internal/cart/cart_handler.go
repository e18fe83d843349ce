package cart

import (
	"net/http"

	"go-inventory-api/internal/pkg/apperror"
	"go-inventory-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) AddItem(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}
	req.ItemID = c.Param("itemId")

	if err := h.service.AddItem(c.Request.Context(), userID, req); err != nil {
		h.logger.Warn("add item failed", zap.String("itemId", req.ItemID), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, "", nil)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	if err := h.service.RemoveItem(c.Request.Context(), userID, c.Param("itemId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", nil)
}

func (h *Handler) Detail(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Detail(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) Count(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	count, err := h.service.Count(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", CartCountResponse{Count: count})
}

func (h *Handler) Finalize(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	if err := h.service.Finalize(c.Request.Context(), userID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Purchase finalized", nil)
}
