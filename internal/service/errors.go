package service

import (
	"errors"
	"fmt"
)

// 业务错误定义，由 handler 层映射为响应码
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("unknown user role")

	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidProduct     = errors.New("invalid product input")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrNotOwner           = errors.New("not resource owner")

	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidAddress       = errors.New("delivery address required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderStateInvalid    = errors.New("order state does not allow this operation")

	ErrInvalidRating = errors.New("rating out of range")
)

// StockConflictError 库存不足错误，携带冲突的商品 ID。
// errors.Is(err, ErrInsufficientStock) 仍然成立。
type StockConflictError struct {
	ProductID uint
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("product %d: %s", e.ProductID, ErrInsufficientStock)
}

func (e *StockConflictError) Unwrap() error {
	return ErrInsufficientStock
}
