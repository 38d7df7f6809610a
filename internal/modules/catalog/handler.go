package catalog

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

/* ---------- ROUTE REGISTRATION ---------- */

// RegisterRoutes registers the read-only catalog.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.GET("/:id/equipment", h.ListCategoryEquipment)
	}

	equipment := r.Group("/equipment")
	{
		equipment.GET("", h.ListEquipment)
		equipment.GET("/:id", h.GetEquipment)
	}
}

// RegisterAdminRoutes registers catalog mutations and supplier management.
// Callers mount it behind admin auth.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/categories", h.CreateCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)

	r.POST("/equipment", h.AddEquipment)
	r.PUT("/equipment/:id", h.UpdateEquipment)
	r.DELETE("/equipment/:id", h.DeleteEquipment)

	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.POST("", h.CreateSupplier)
		suppliers.PUT("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
	}
}

/* ---------- CATEGORY HANDLERS ---------- */

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"category": category})
}

func (h *Handler) ListCategoryEquipment(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	items, err := h.service.ListEquipmentByCategory(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": toEquipmentResponses(items)})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.service.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"category": category})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- EQUIPMENT HANDLERS ---------- */

func (h *Handler) ListEquipment(c *gin.Context) {
	items, err := h.service.ListEquipment(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": toEquipmentResponses(items)})
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": ToEquipmentResponse(item)})
}

// AddEquipment handles POST /api/v1/equipment
func (h *Handler) AddEquipment(c *gin.Context) {
	var req AddEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.service.AddEquipment(c.Request.Context(), req.Name, req.CategoryID, req.Quantity, req.Price)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"equipment": ToEquipmentResponse(item),
		},
		"message": "Equipment added successfully",
	})
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.service.UpdateEquipment(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": ToEquipmentResponse(item)})
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- SUPPLIER HANDLERS ---------- */

func (h *Handler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *Handler) GetSupplier(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	supplier, err := h.service.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"supplier": supplier})
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	supplier, err := h.service.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"supplier": supplier})
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	supplier, err := h.service.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"supplier": supplier})
}

func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
