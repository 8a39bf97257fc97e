package i18n

var messages = map[string]map[string]string{
	"en-US": {
		"error.bad_request":            "Invalid request payload",
		"error.unauthorized":           "Authentication required",
		"error.forbidden":              "Access denied",
		"error.internal":               "Internal error, please try again later",
		"error.user_id_invalid":        "Invalid user identity",
		"error.user_id_type_invalid":   "Unexpected user identity type",
		"error.auth_header_missing":    "Authorization header missing",
		"error.auth_header_invalid":    "Authorization header malformed",
		"error.token_invalid":          "Invalid or expired token",
		"error.jwt_secret_missing":     "Server authentication is not configured",
		"error.email_exists":           "Email already registered",
		"error.invalid_credentials":    "Invalid email or password",
		"error.role_invalid":           "Unknown account role",
		"error.register_failed":        "Registration failed",
		"error.login_failed":           "Login failed",
		"error.login_too_many":         "Too many login attempts, retry in %d seconds",
		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter unavailable",
		"error.product_not_found":      "Product not found",
		"error.product_not_available":  "Product is not available",
		"error.product_invalid":        "Invalid product fields",
		"error.category_not_found":     "Category not found",
		"error.category_exists":        "Category already exists",
		"error.address_required":       "Delivery address is required",
		"error.user_not_found":         "User not found",
		"error.product_fetch_failed":   "Failed to load products",
		"error.product_save_failed":    "Failed to save product",
		"error.product_not_owner":      "You do not own this product",
		"error.category_fetch_failed":  "Failed to load categories",
		"error.category_save_failed":   "Failed to save category",
		"error.quantity_invalid":       "Quantity must be at least 1",
		"error.stock_insufficient":     "Not enough stock for the requested quantity",
		"error.cart_item_not_found":    "Cart item not found",
		"error.cart_fetch_failed":      "Failed to load cart",
		"error.cart_update_failed":     "Failed to update cart",
		"error.cart_empty":             "Cart is empty",
		"error.payment_method_invalid": "Unsupported payment method",
		"error.order_not_found":        "Order not found",
		"error.order_create_failed":    "Failed to place order",
		"error.order_fetch_failed":     "Failed to load orders",
		"error.order_cancel_failed":    "Failed to cancel order",
		"error.order_status_invalid":   "Order status does not allow this operation",
		"error.rating_invalid":         "Rating must be between 1 and 5",
		"error.feedback_create_failed": "Failed to submit feedback",
		"error.feedback_fetch_failed":  "Failed to load feedback",
	},
	"zh-CN": {
		"error.bad_request":            "请求参数无效",
		"error.unauthorized":           "请先登录",
		"error.forbidden":              "没有访问权限",
		"error.internal":               "服务器开小差了，请稍后重试",
		"error.user_id_invalid":        "用户身份无效",
		"error.user_id_type_invalid":   "用户身份类型异常",
		"error.auth_header_missing":    "缺少认证信息",
		"error.auth_header_invalid":    "认证信息格式错误",
		"error.token_invalid":          "登录状态无效或已过期",
		"error.jwt_secret_missing":     "服务端认证未配置",
		"error.email_exists":           "邮箱已被注册",
		"error.invalid_credentials":    "邮箱或密码错误",
		"error.role_invalid":           "未知的账户角色",
		"error.register_failed":        "注册失败",
		"error.login_failed":           "登录失败",
		"error.login_too_many":         "登录尝试过于频繁，请 %d 秒后重试",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.product_not_found":      "商品不存在",
		"error.product_not_available":  "商品已下架",
		"error.product_invalid":        "商品信息不合法",
		"error.category_not_found":     "分类不存在",
		"error.category_exists":        "分类已存在",
		"error.address_required":       "收货地址不能为空",
		"error.user_not_found":         "用户不存在",
		"error.product_fetch_failed":   "商品加载失败",
		"error.product_save_failed":    "商品保存失败",
		"error.product_not_owner":      "无权操作他人商品",
		"error.category_fetch_failed":  "分类加载失败",
		"error.category_save_failed":   "分类保存失败",
		"error.quantity_invalid":       "数量至少为 1",
		"error.stock_insufficient":     "库存不足",
		"error.cart_item_not_found":    "购物车项不存在",
		"error.cart_fetch_failed":      "购物车加载失败",
		"error.cart_update_failed":     "购物车更新失败",
		"error.cart_empty":             "购物车为空",
		"error.payment_method_invalid": "不支持的支付方式",
		"error.order_not_found":        "订单不存在",
		"error.order_create_failed":    "下单失败",
		"error.order_fetch_failed":     "订单加载失败",
		"error.order_cancel_failed":    "订单取消失败",
		"error.order_status_invalid":   "当前订单状态不允许该操作",
		"error.rating_invalid":         "评分需在 1 到 5 之间",
		"error.feedback_create_failed": "评价提交失败",
		"error.feedback_fetch_failed":  "评价加载失败",
	},
}
