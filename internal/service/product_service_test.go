package service

import (
	"errors"
	"testing"

	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func TestSellerProductCRUD(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)
	category := createCategory(t, db, "Fruits")

	product, err := svc.Create(10, SaveProductInput{
		CategoryID: category.ID,
		Name:       "Apple",
		Unit:       "kg",
		Price:      decimal.RequireFromString("3.50"),
		Stock:      100,
		Available:  true,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.SellerID != 10 {
		t.Fatalf("seller id want 10 got %d", product.SellerID)
	}

	updated, err := svc.Update(10, product.ID, SaveProductInput{
		CategoryID: category.ID,
		Name:       "Red Apple",
		Price:      decimal.RequireFromString("3.80"),
		Stock:      80,
		Available:  true,
	})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Name != "Red Apple" || updated.Price.String() != "3.80" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Unit != "kg" {
		t.Fatalf("empty unit should keep previous value got %s", updated.Unit)
	}

	if err := svc.Delete(10, product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if _, err := svc.Get(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound after delete got %v", err)
	}
}

func TestSellerProductOwnership(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)
	category := createCategory(t, db, "Dairy")

	product, err := svc.Create(10, SaveProductInput{
		CategoryID: category.ID,
		Name:       "Milk",
		Price:      decimal.RequireFromString("1.50"),
		Stock:      50,
		Available:  true,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	// 非本人商品拒绝修改与删除
	if _, err := svc.Update(11, product.ID, SaveProductInput{
		CategoryID: category.ID,
		Name:       "Hijacked",
		Price:      decimal.RequireFromString("0.01"),
		Stock:      1,
		Available:  true,
	}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("want ErrNotOwner got %v", err)
	}
	if err := svc.Delete(11, product.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("want ErrNotOwner got %v", err)
	}
}

func TestProductInputValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)
	category := createCategory(t, db, "Grains")

	if _, err := svc.Create(10, SaveProductInput{
		CategoryID: category.ID,
		Name:       "  ",
		Price:      decimal.RequireFromString("1.00"),
		Stock:      1,
	}); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("want ErrInvalidProduct for empty name got %v", err)
	}
	if _, err := svc.Create(10, SaveProductInput{
		CategoryID: category.ID,
		Name:       "Rice",
		Price:      decimal.RequireFromString("-1.00"),
		Stock:      1,
	}); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("want ErrInvalidProduct for negative price got %v", err)
	}
	if _, err := svc.Create(10, SaveProductInput{
		CategoryID: 9999,
		Name:       "Rice",
		Price:      decimal.RequireFromString("1.00"),
		Stock:      1,
	}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound got %v", err)
	}
}
