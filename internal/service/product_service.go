package service

import (
	"strings"

	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品目录查询与卖家商品管理
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListInput 商品列表查询参数
type ListInput struct {
	CategoryID    uint
	SellerID      uint
	Keyword       string
	OnlyAvailable bool
	Page          int
	PageSize      int
}

// List 商品分页列表
func (s *ProductService) List(input ListInput) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		CategoryID:    input.CategoryID,
		SellerID:      input.SellerID,
		Keyword:       strings.TrimSpace(input.Keyword),
		OnlyAvailable: input.OnlyAvailable,
		Page:          input.Page,
		PageSize:      input.PageSize,
	})
}

// Get 商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// SaveProductInput 商品创建/更新参数
type SaveProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	ImageURL    string
	Unit        string
	Price       decimal.Decimal
	Stock       int
	Available   bool
}

// Create 卖家创建商品
func (s *ProductService) Create(sellerID uint, input SaveProductInput) (*models.Product, error) {
	if err := s.validateSaveInput(input); err != nil {
		return nil, err
	}

	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = constants.DefaultProductUnit
	}
	product := &models.Product{
		CategoryID:  input.CategoryID,
		SellerID:    sellerID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Unit:        unit,
		Price:       models.NewMoneyFromDecimal(input.Price),
		Stock:       input.Stock,
		Available:   input.Available,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 卖家更新商品，仅限本人商品
func (s *ProductService) Update(sellerID, productID uint, input SaveProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.SellerID != sellerID {
		return nil, ErrNotOwner
	}
	if err := s.validateSaveInput(input); err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.ImageURL = input.ImageURL
	if unit := strings.TrimSpace(input.Unit); unit != "" {
		product.Unit = unit
	}
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.Stock = input.Stock
	product.Available = input.Available

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 卖家删除商品，仅限本人商品
func (s *ProductService) Delete(sellerID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.SellerID != sellerID {
		return ErrNotOwner
	}
	return s.productRepo.Delete(productID)
}

func (s *ProductService) validateSaveInput(input SaveProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidProduct
	}
	if input.Price.IsNegative() || input.Stock < 0 {
		return ErrInvalidProduct
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}
