package service

import (
	"context"
	"time"

	"github.com/livemart/internal/cache"
	"github.com/livemart/internal/logger"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"
)

const (
	categoryListCacheKey = "category:list"
	categoryListCacheTTL = 10 * time.Minute
)

// CategoryService 商品分类查询
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 分类列表，优先读缓存
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	hit, err := cache.GetJSON(ctx, categoryListCacheKey, &cached)
	if err != nil {
		logger.Warnw("category_cache_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoryListCacheKey, categories, categoryListCacheTTL); err != nil {
		logger.Warnw("category_cache_write_failed", "error", err)
	}
	return categories, nil
}

// Get 根据 ID 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类并失效列表缓存，名称重复时拒绝
func (s *CategoryService) Create(ctx context.Context, category *models.Category) error {
	existing, err := s.categoryRepo.GetByName(category.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrCategoryExists
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	if err := cache.Delete(ctx, categoryListCacheKey); err != nil {
		logger.Warnw("category_cache_invalidate_failed", "error", err)
	}
	return nil
}
