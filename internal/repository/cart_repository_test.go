package repository

import (
	"testing"

	"github.com/livemart/internal/models"
)

func TestCartItemLifecycle(t *testing.T) {
	db := setupRepositoryTest(t)
	cartRepo := NewCartRepository(db)
	productRepo := NewProductRepository(db)
	product := createTestProduct(t, productRepo, "Tomato", "1.80", 20)

	item := &models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2}
	if err := cartRepo.Create(item); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	got, err := cartRepo.GetByUserAndProduct(1, product.ID)
	if err != nil {
		t.Fatalf("get cart item failed: %v", err)
	}
	if got == nil || got.Quantity != 2 {
		t.Fatalf("cart item quantity want 2 got %+v", got)
	}

	if err := cartRepo.UpdateQuantity(item.ID, 5); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	items, err := cartRepo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("cart list want one item of quantity 5 got %+v", items)
	}
	if items[0].Product == nil || items[0].Product.Name != "Tomato" {
		t.Fatalf("cart item product not preloaded: %+v", items[0].Product)
	}

	affected, err := cartRepo.DeleteByIDAndUser(item.ID, 1)
	if err != nil {
		t.Fatalf("delete cart item failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("delete affected want 1 got %d", affected)
	}

	// 重复删除不报错
	affected, err = cartRepo.DeleteByIDAndUser(item.ID, 1)
	if err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("repeat delete affected want 0 got %d", affected)
	}
}

func TestCartListOrderedByCreation(t *testing.T) {
	db := setupRepositoryTest(t)
	cartRepo := NewCartRepository(db)
	productRepo := NewProductRepository(db)
	first := createTestProduct(t, productRepo, "Rice", "9.99", 50)
	second := createTestProduct(t, productRepo, "Flour", "4.50", 50)

	if err := cartRepo.Create(&models.CartItem{UserID: 7, ProductID: first.ID, Quantity: 1}); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	if err := cartRepo.Create(&models.CartItem{UserID: 7, ProductID: second.ID, Quantity: 1}); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	items, err := cartRepo.ListByUser(7)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("cart list want 2 items got %d", len(items))
	}
	if items[0].ProductID != first.ID || items[1].ProductID != second.ID {
		t.Fatalf("cart list not in insertion order: %+v", items)
	}

	if err := cartRepo.ClearByUser(7); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	items, err = cartRepo.ListByUser(7)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after clear, got %d items", len(items))
	}
}
