package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（customer/retailer/wholesaler）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                              // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                 // 邮箱（登录名）
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`               // 密码哈希
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`            // 显示名
	Phone        string         `gorm:"type:varchar(40)" json:"phone"`                     // 手机号
	Role         string         `gorm:"type:varchar(20);not null;index" json:"role"`       // 角色
	Address      string         `gorm:"type:varchar(500)" json:"address,omitempty"`        // 默认收货地址
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                        // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
