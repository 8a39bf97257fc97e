package api

import (
	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/http/response"
	"github.com/livemart/internal/repository"
	"github.com/livemart/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SaveProductRequest 卖家商品创建/更新请求
type SaveProductRequest struct {
	CategoryID  uint            `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Available   *bool           `json:"available"`
}

func (r SaveProductRequest) toInput() service.SaveProductInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return service.SaveProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Unit:        r.Unit,
		Price:       r.Price,
		Stock:       r.Stock,
		Available:   available,
	}
}

// requireSeller 校验当前用户为卖家角色
func (h *Handler) requireSeller(c *gin.Context) (uint, bool) {
	uid, ok := getUserID(c)
	if !ok {
		return 0, false
	}
	if !constants.IsSellerRole(getUserRole(c)) {
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
		return 0, false
	}
	return uid, true
}

// ListSellerProducts 卖家名下商品列表（含下架商品）
func (h *Handler) ListSellerProducts(c *gin.Context) {
	uid, ok := h.requireSeller(c)
	if !ok {
		return
	}
	page, pageSize := parsePageQuery(c)

	products, total, err := h.ProductService.List(service.ListInput{
		SellerID: uid,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	page, pageSize = repository.NormalizePage(page, pageSize)
	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// CreateProduct 卖家创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := h.requireSeller(c)
	if !ok {
		return
	}
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(uid, req.toInput())
	if err != nil {
		respondSellerProductError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 卖家更新商品，仅限本人商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	uid, ok := h.requireSeller(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Update(uid, productID, req.toInput())
	if err != nil {
		respondSellerProductError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 卖家删除商品，仅限本人商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	uid, ok := h.requireSeller(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(uid, productID); err != nil {
		respondSellerProductError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
