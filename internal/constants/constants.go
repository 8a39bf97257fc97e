package constants

// 订单状态常量
const (
	OrderStatusPlaced    = "placed"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// 支付方式常量（仅记录，不发起真实扣款）
const (
	PaymentMethodOnline  = "online"
	PaymentMethodOffline = "offline"
)

// 用户角色常量
const (
	RoleCustomer   = "customer"
	RoleRetailer   = "retailer"
	RoleWholesaler = "wholesaler"
)

// 评分区间常量
const (
	FeedbackRatingMin = 1
	FeedbackRatingMax = 5
)

// DefaultProductUnit 商品计量单位默认值
const DefaultProductUnit = "piece"

// IsSellerRole 判断角色是否可管理商品
func IsSellerRole(role string) bool {
	return role == RoleRetailer || role == RoleWholesaler
}

// IsKnownRole 判断角色是否为已定义角色
func IsKnownRole(role string) bool {
	switch role {
	case RoleCustomer, RoleRetailer, RoleWholesaler:
		return true
	}
	return false
}

// IsKnownPaymentMethod 判断支付方式是否为已定义方式
func IsKnownPaymentMethod(method string) bool {
	return method == PaymentMethodOnline || method == PaymentMethodOffline
}
