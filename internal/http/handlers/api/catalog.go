package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/livemart/internal/http/response"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"
	"github.com/livemart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "id", "error.category_not_found")
	if !ok {
		return
	}

	category, err := h.CategoryService.Get(categoryID)
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, category)
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateCategory 创建分类（卖家）
func (h *Handler) CreateCategory(c *gin.Context) {
	if _, ok := h.requireSeller(c); !ok {
		return
	}
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.CategoryService.Create(c.Request.Context(), category); err != nil {
		respondCategoryError(c, err)
		return
	}
	response.Success(c, category)
}

// ListProducts 商品列表（公开，仅在售商品）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(service.ListInput{
		CategoryID:    uint(categoryID),
		Keyword:       c.Query("keyword"),
		OnlyAvailable: true,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	page, pageSize = repository.NormalizePage(page, pageSize)
	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, product)
}
