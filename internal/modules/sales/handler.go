package sales

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsinventory/internal/pkg/params"
	"sportsinventory/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transactions", h.ProcessTransaction)
	rg.GET("/transactions/:id", h.GetTransaction)
}

func (h *Handler) ProcessTransaction(c *gin.Context) {
	var req ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	txn, err := h.service.ProcessTransaction(c.Request.Context(), req.CustomerID, req.EquipmentID, req.Quantity)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     "Transaction Processed Successfully",
		"transaction": ToTransactionResponse(txn),
	})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	txn, err := h.service.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToTransactionResponse(txn))
}
