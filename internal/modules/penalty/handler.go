package penalty

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsinventory/internal/domain"
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
	customers := rg.Group("/customers/:id")
	{
		customers.GET("/transactions", h.ListCustomerTransactions)
		customers.GET("/penalties", h.ListCustomerPenalties)
		customers.GET("/penalties/total", h.GetTotalPenalty)
	}
	rg.GET("/penalties/:id", h.GetPenalty)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/penalties", h.IssuePenalty)
}

func (h *Handler) GetTotalPenalty(c *gin.Context) {
	customerID, ok := params.ID(c, "id")
	if !ok {
		return
	}

	total, err := h.service.GetTotalPenalty(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, TotalPenaltyResponse{
		CustomerID: customerID,
		Total:      total.StringFixed(domain.MoneyScale),
	})
}

func (h *Handler) ListCustomerTransactions(c *gin.Context) {
	customerID, ok := params.ID(c, "id")
	if !ok {
		return
	}

	out := make([]TransactionResponse, 0)
	for t, err := range h.service.CustomerTransactions(c.Request.Context(), customerID) {
		if err != nil {
			response.FromError(c, err)
			return
		}
		out = append(out, ToTransactionResponse(&t))
	}

	response.Success(c, http.StatusOK, gin.H{"customer_id": customerID, "transactions": out})
}

func (h *Handler) ListCustomerPenalties(c *gin.Context) {
	customerID, ok := params.ID(c, "id")
	if !ok {
		return
	}

	penalties, err := h.service.ListPenalties(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]PenaltyResponse, 0, len(penalties))
	for i := range penalties {
		out = append(out, ToPenaltyResponse(&penalties[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"penalties": out})
}

func (h *Handler) GetPenalty(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetPenalty(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToPenaltyResponse(p))
}

func (h *Handler) IssuePenalty(c *gin.Context) {
	var req IssuePenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	p, err := h.service.IssuePenalty(c.Request.Context(), req.CustomerID, req.Amount, req.Reason)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToPenaltyResponse(p))
}
