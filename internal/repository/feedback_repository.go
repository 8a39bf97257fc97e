package repository

import (
	"github.com/livemart/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository 评价数据访问接口
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	ListByProduct(productID uint) ([]models.Feedback, error)
	AggregateByProduct(productID uint) (float64, int64, error)
	WithTx(tx *gorm.DB) FeedbackRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormFeedbackRepository GORM 实现
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建评价仓库
func NewFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// WithTx 返回使用事务连接的仓库
func (r *GormFeedbackRepository) WithTx(tx *gorm.DB) FeedbackRepository {
	return &GormFeedbackRepository{db: tx}
}

// Transaction 执行事务
func (r *GormFeedbackRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create 创建评价
func (r *GormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// ListByProduct 商品评价列表，按时间倒序
func (r *GormFeedbackRepository) ListByProduct(productID uint) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.Where("product_id = ?", productID).
		Preload("User").
		Order("created_at desc, id desc").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// AggregateByProduct 计算商品评分均值与数量
func (r *GormFeedbackRepository) AggregateByProduct(productID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Feedback{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
