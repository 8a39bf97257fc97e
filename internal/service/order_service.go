package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/logger"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// allowedTransitions 订单状态机
var allowedTransitions = map[string][]string{
	constants.OrderStatusPlaced: {
		constants.OrderStatusDelivered,
		constants.OrderStatusCanceled,
	},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderService 下单流程与订单查询
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewOrderService 创建订单服务
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// PlaceOrderInput 下单参数
type PlaceOrderInput struct {
	DeliveryAddress string
	PaymentMethod   string
}

// PlaceOrder 从购物车创建订单。
// 建单、扣库存、清空购物车在同一事务内完成，任一失败整体回滚。
// 金额以事务内读取的商品单价为准，不信任客户端提交的合计。
func (s *OrderService) PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error) {
	address := strings.TrimSpace(input.DeliveryAddress)
	if address == "" {
		return nil, ErrInvalidAddress
	}
	if !constants.IsKnownPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	var created *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartTx := s.cartRepo.WithTx(tx)
		productTx := s.productRepo.WithTx(tx)
		orderTx := s.orderRepo.WithTx(tx)

		cartItems, err := cartTx.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		orderItems := make([]models.OrderItem, 0, len(cartItems))
		total := decimal.Zero
		for _, item := range cartItems {
			product, err := productTx.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Available {
				return ErrProductNotFound
			}

			// 条件扣减：stock >= quantity 才生效，并发下单由此串行化
			affected, err := productTx.DecrementStock(product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return &StockConflictError{ProductID: product.ID}
			}

			lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
				TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
			})
			total = total.Add(lineTotal)
		}

		order := &models.Order{
			OrderNo:         generateOrderNo(),
			UserID:          userID,
			Status:          constants.OrderStatusPlaced,
			DeliveryAddress: address,
			PaymentMethod:   input.PaymentMethod,
			TotalAmount:     models.NewMoneyFromDecimal(total),
		}
		if err := orderTx.Create(order, orderItems); err != nil {
			return err
		}
		if err := cartTx.ClearByUser(userID); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_placed",
		"order_no", created.OrderNo,
		"user_id", userID,
		"total_amount", created.TotalAmount.String(),
		"items", len(created.Items),
	)
	return created, nil
}

// Get 查询用户订单详情
func (s *OrderService) Get(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// OrderListInput 订单列表查询参数
type OrderListInput struct {
	Status   string
	Page     int
	PageSize int
}

// ListByUser 用户订单分页列表
func (s *OrderService) ListByUser(userID uint, input OrderListInput) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		UserID:   userID,
		Status:   input.Status,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
}

// Cancel 取消订单并回补库存，仅允许 placed 状态
func (s *OrderService) Cancel(userID, orderID uint) (*models.Order, error) {
	var canceled *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderTx := s.orderRepo.WithTx(tx)
		productTx := s.productRepo.WithTx(tx)

		order, err := orderTx.GetByIDAndUser(orderID, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !canTransition(order.Status, constants.OrderStatusCanceled) {
			return ErrOrderStateInvalid
		}

		for _, item := range order.Items {
			if err := productTx.RestoreStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		now := time.Now()
		if err := orderTx.UpdateStatus(order.ID, constants.OrderStatusCanceled, map[string]interface{}{
			"canceled_at": &now,
		}); err != nil {
			return err
		}
		order.Status = constants.OrderStatusCanceled
		order.CanceledAt = &now
		canceled = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_canceled", "order_no", canceled.OrderNo, "user_id", userID)
	return canceled, nil
}

// MarkDelivered 确认收货，仅允许 placed 状态
func (s *OrderService) MarkDelivered(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !canTransition(order.Status, constants.OrderStatusDelivered) {
		return nil, ErrOrderStateInvalid
	}

	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusDelivered, nil); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusDelivered
	return order, nil
}

// generateOrderNo 生成订单编号：时间前缀 + 随机后缀
func generateOrderNo() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("LM%s%s", time.Now().Format("20060102150405"), strings.ToUpper(suffix))
}
