package service

import (
	"errors"
	"testing"
	"time"

	"github.com/livemart/internal/models"
)

func TestSubmitFeedbackInvalidRating(t *testing.T) {
	db := setupServiceTest(t)
	svc := newFeedbackService(db)
	product := createProduct(t, db, "Apple", "3.50", 5)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Submit(1, SubmitInput{ProductID: product.ID, Rating: rating}); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: want ErrInvalidRating got %v", rating, err)
		}
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if got.Rating != 0 || got.RatingCount != 0 {
		t.Fatalf("rating should be unchanged got %v/%d", got.Rating, got.RatingCount)
	}
}

func TestSubmitFeedbackUnknownProduct(t *testing.T) {
	db := setupServiceTest(t)
	svc := newFeedbackService(db)

	if _, err := svc.Submit(1, SubmitInput{ProductID: 9999, Rating: 4}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}

func TestFeedbackRecomputesMeanRating(t *testing.T) {
	db := setupServiceTest(t)
	svc := newFeedbackService(db)
	product := createProduct(t, db, "Banana", "2.20", 5)

	for _, rating := range []int{5, 3, 4} {
		if _, err := svc.Submit(1, SubmitInput{ProductID: product.ID, Rating: rating}); err != nil {
			t.Fatalf("submit rating %d failed: %v", rating, err)
		}
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if got.Rating != 4.0 {
		t.Fatalf("rating want 4.0 got %v", got.Rating)
	}
	if got.RatingCount != 3 {
		t.Fatalf("rating count want 3 got %d", got.RatingCount)
	}
}

func TestFeedbackListNewestFirst(t *testing.T) {
	db := setupServiceTest(t)
	svc := newFeedbackService(db)
	product := createProduct(t, db, "Milk", "1.50", 5)

	base := time.Now().Add(-time.Hour)
	older := &models.Feedback{UserID: 1, ProductID: product.ID, Rating: 3, Comment: "older", CreatedAt: base}
	newer := &models.Feedback{UserID: 2, ProductID: product.ID, Rating: 5, Comment: "newer", CreatedAt: base.Add(time.Minute)}
	if err := db.Create(older).Error; err != nil {
		t.Fatalf("create feedback failed: %v", err)
	}
	if err := db.Create(newer).Error; err != nil {
		t.Fatalf("create feedback failed: %v", err)
	}

	feedbacks, err := svc.ListByProduct(product.ID)
	if err != nil {
		t.Fatalf("list feedback failed: %v", err)
	}
	if len(feedbacks) != 2 {
		t.Fatalf("feedback list want 2 got %d", len(feedbacks))
	}
	if feedbacks[0].Comment != "newer" || feedbacks[1].Comment != "older" {
		t.Fatalf("feedback list not newest-first: %+v", feedbacks)
	}

	if _, err := svc.ListByProduct(9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}
