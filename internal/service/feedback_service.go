package service

import (
	"math"
	"strings"

	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"

	"gorm.io/gorm"
)

// FeedbackService 评价提交与商品评分聚合
type FeedbackService struct {
	db           *gorm.DB
	feedbackRepo repository.FeedbackRepository
	productRepo  repository.ProductRepository
}

// NewFeedbackService 创建评价服务
func NewFeedbackService(
	db *gorm.DB,
	feedbackRepo repository.FeedbackRepository,
	productRepo repository.ProductRepository,
) *FeedbackService {
	return &FeedbackService{
		db:           db,
		feedbackRepo: feedbackRepo,
		productRepo:  productRepo,
	}
}

// SubmitInput 评价提交参数
type SubmitInput struct {
	ProductID uint
	Rating    int
	Comment   string
}

// Submit 提交评价并在同一事务内重算商品评分均值
func (s *FeedbackService) Submit(userID uint, input SubmitInput) (*models.Feedback, error) {
	if input.Rating < constants.FeedbackRatingMin || input.Rating > constants.FeedbackRatingMax {
		return nil, ErrInvalidRating
	}

	var created *models.Feedback
	err := s.db.Transaction(func(tx *gorm.DB) error {
		feedbackTx := s.feedbackRepo.WithTx(tx)
		productTx := s.productRepo.WithTx(tx)

		product, err := productTx.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		feedback := &models.Feedback{
			UserID:    userID,
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Comment:   strings.TrimSpace(input.Comment),
		}
		if err := feedbackTx.Create(feedback); err != nil {
			return err
		}

		avg, count, err := feedbackTx.AggregateByProduct(input.ProductID)
		if err != nil {
			return err
		}
		// 保留 2 位小数，避免浮点尾差写入
		rounded := math.Round(avg*100) / 100
		if err := productTx.UpdateRating(input.ProductID, rounded, int(count)); err != nil {
			return err
		}
		created = feedback
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByProduct 商品评价列表，按提交时间倒序
func (s *FeedbackService) ListByProduct(productID uint) ([]models.Feedback, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.feedbackRepo.ListByProduct(productID)
}
