package service

import (
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService 购物车聚合：条目维护、库存校验与金额汇总
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartItemDetail 购物车条目视图（含商品展示信息）
type CartItemDetail struct {
	ID          uint         `json:"id"`
	ProductID   uint         `json:"product_id"`
	ProductName string       `json:"product_name"`
	ImageURL    string       `json:"image_url"`
	Unit        string       `json:"unit"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	Subtotal    models.Money `json:"subtotal"`
	Stock       int          `json:"stock"`
	Available   bool         `json:"available"`
}

// CartView 购物车整体视图
type CartView struct {
	Items       []CartItemDetail `json:"items"`
	TotalAmount models.Money     `json:"total_amount"`
}

// ListByUser 用户购物车视图，金额由当前商品单价汇总
func (s *CartService) ListByUser(userID uint) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartItemDetail, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			// 商品已被删除，条目保留但不计入金额
			view.Items = append(view.Items, CartItemDetail{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
			continue
		}
		subtotal := item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, CartItemDetail{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			ImageURL:    item.Product.ImageURL,
			Unit:        item.Product.Unit,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
			Subtotal:    models.NewMoneyFromDecimal(subtotal),
			Stock:       item.Product.Stock,
			Available:   item.Product.Available,
		})
		total = total.Add(subtotal)
	}
	view.TotalAmount = models.NewMoneyFromDecimal(total)
	return view, nil
}

// AddItemInput 加购参数
type AddItemInput struct {
	ProductID uint
	Quantity  int
}

// AddItem 加入购物车，同商品条目合并数量并按库存复核
func (s *CartService) AddItem(userID uint, input AddItemInput) (*models.CartItem, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.Available {
		return nil, ErrProductUnavailable
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, input.ProductID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if existing != nil {
		quantity += existing.Quantity
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(existing.ID, quantity); err != nil {
			return nil, err
		}
		existing.Quantity = quantity
		return existing, nil
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity 修改条目数量，越界时购物车保持不变
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// RemoveItem 删除条目，重复删除视为成功
func (s *CartService) RemoveItem(userID, itemID uint) error {
	_, err := s.cartRepo.DeleteByIDAndUser(itemID, userID)
	return err
}

// Clear 清空用户购物车
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}
