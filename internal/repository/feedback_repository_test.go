package repository

import (
	"testing"
	"time"

	"github.com/livemart/internal/models"
)

func TestFeedbackAggregateByProduct(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewFeedbackRepository(db)

	for _, rating := range []int{5, 3, 4} {
		if err := repo.Create(&models.Feedback{UserID: 1, ProductID: 42, Rating: rating}); err != nil {
			t.Fatalf("create feedback failed: %v", err)
		}
	}
	// 其他商品的评价不参与聚合
	if err := repo.Create(&models.Feedback{UserID: 1, ProductID: 43, Rating: 1}); err != nil {
		t.Fatalf("create feedback failed: %v", err)
	}

	avg, count, err := repo.AggregateByProduct(42)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("count want 3 got %d", count)
	}
	if avg != 4.0 {
		t.Fatalf("avg want 4.0 got %v", avg)
	}
}

func TestFeedbackAggregateEmpty(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewFeedbackRepository(db)

	avg, count, err := repo.AggregateByProduct(99)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if count != 0 || avg != 0 {
		t.Fatalf("empty aggregate want (0, 0) got (%v, %d)", avg, count)
	}
}

func TestFeedbackListNewestFirst(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewFeedbackRepository(db)

	base := time.Now().Add(-time.Hour)
	older := &models.Feedback{UserID: 1, ProductID: 7, Rating: 3, Comment: "older", CreatedAt: base}
	newer := &models.Feedback{UserID: 2, ProductID: 7, Rating: 5, Comment: "newer", CreatedAt: base.Add(time.Minute)}
	if err := repo.Create(older); err != nil {
		t.Fatalf("create feedback failed: %v", err)
	}
	if err := repo.Create(newer); err != nil {
		t.Fatalf("create feedback failed: %v", err)
	}

	feedbacks, err := repo.ListByProduct(7)
	if err != nil {
		t.Fatalf("list feedback failed: %v", err)
	}
	if len(feedbacks) != 2 {
		t.Fatalf("feedback list want 2 got %d", len(feedbacks))
	}
	if feedbacks[0].Comment != "newer" || feedbacks[1].Comment != "older" {
		t.Fatalf("feedback list not newest-first: %+v", feedbacks)
	}
}
