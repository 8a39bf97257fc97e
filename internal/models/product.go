package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`                         // 分类ID
	SellerID    uint           `gorm:"not null;index" json:"seller_id"`                           // 卖家ID
	Name        string         `gorm:"not null;index" json:"name"`                                // 商品名
	Description string         `gorm:"type:text" json:"description"`                              // 描述
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`                        // 图片
	Unit        string         `gorm:"type:varchar(20);not null;default:'piece'" json:"unit"`     // 计量单位
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`        // 单价
	Stock       int            `gorm:"not null;default:0" json:"stock"`                           // 可售库存
	Available   bool           `gorm:"default:true;index" json:"available"`                       // 是否上架
	Rating      float64        `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`        // 评分均值（0-5，由评价推导）
	RatingCount int            `gorm:"not null;default:0" json:"rating_count"`                    // 评价数量（由评价推导）
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Seller   *User    `gorm:"foreignKey:SellerID" json:"seller,omitempty"`     // 卖家信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
