package api

import (
	"errors"

	handlershared "github.com/livemart/internal/http/handlers/shared"
	"github.com/livemart/internal/http/response"
	"github.com/livemart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductUnavailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrInsufficientStock, code: response.CodeConflict, key: "error.stock_insufficient"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrInvalidAddress, code: response.CodeBadRequest, key: "error.address_required"},
	{target: service.ErrInvalidPaymentMethod, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrInsufficientStock, code: response.CodeConflict, key: "error.stock_insufficient"},
}

var orderQueryErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStateInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
}

var feedbackErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidRating, code: response.CodeBadRequest, key: "error.rating_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrCategoryExists, code: response.CodeConflict, key: "error.category_exists"},
}

var sellerProductErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrInvalidProduct, code: response.CodeBadRequest, key: "error.product_invalid"},
	{target: service.ErrNotOwner, code: response.CodeForbidden, key: "error.product_not_owner"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondOrderCreateError(c *gin.Context, err error) {
	// 库存冲突响应带上冲突的商品 ID，多行购物车时客户端才知道是哪一行
	var conflict *service.StockConflictError
	if errors.As(err, &conflict) {
		handlershared.RespondErrorWithData(c, response.CodeConflict, "error.stock_insufficient",
			gin.H{"product_id": conflict.ProductID}, nil)
		return
	}
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "error.order_create_failed")
}

func respondOrderQueryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderQueryErrorRules, response.CodeInternal, "error.order_fetch_failed")
}

func respondFeedbackError(c *gin.Context, err error) {
	respondWithMappedError(c, err, feedbackErrorRules, response.CodeInternal, "error.feedback_create_failed")
}

func respondCategoryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_save_failed")
}

func respondSellerProductError(c *gin.Context, err error) {
	respondWithMappedError(c, err, sellerProductErrorRules, response.CodeInternal, "error.product_save_failed")
}
