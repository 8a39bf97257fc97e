package models

import (
	"time"
)

// Feedback 商品评价表（仅追加，不修改）
type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	UserID    uint      `gorm:"index;not null" json:"user_id"`    // 用户ID
	ProductID uint      `gorm:"index;not null" json:"product_id"` // 商品ID
	Rating    int       `gorm:"not null" json:"rating"`           // 评分（1-5）
	Comment   string    `gorm:"type:text" json:"comment"`         // 评价内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`          // 创建时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 评价用户
}

// TableName 指定表名
func (Feedback) TableName() string {
	return "feedbacks"
}
