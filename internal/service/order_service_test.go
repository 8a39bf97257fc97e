package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/models"
)

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupServiceTest(t)
	svc := newOrderService(db)
	product := createProduct(t, db, "Apple", "3.50", 5)

	_, err := svc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "12 Lakeview Road",
		PaymentMethod:   constants.PaymentMethodOnline,
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("no order should exist got %d", orderCount)
	}
	if stock := productStock(t, db, product.ID); stock != 5 {
		t.Fatalf("stock should stay 5 got %d", stock)
	}
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	product := createProduct(t, db, "Apple", "9.99", 5)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	order, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "12 Lakeview Road",
		PaymentMethod:   constants.PaymentMethodOffline,
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Status != constants.OrderStatusPlaced {
		t.Fatalf("status want placed got %s", order.Status)
	}
	if order.TotalAmount.String() != "19.98" {
		t.Fatalf("total want 19.98 got %s", order.TotalAmount.String())
	}
	if len(order.Items) != 1 {
		t.Fatalf("order items want 1 got %d", len(order.Items))
	}
	line := order.Items[0]
	if line.ProductName != "Apple" || line.UnitPrice.String() != "9.99" || line.Quantity != 2 {
		t.Fatalf("line snapshot mismatch: %+v", line)
	}
	if line.TotalPrice.String() != "19.98" {
		t.Fatalf("line total want 19.98 got %s", line.TotalPrice.String())
	}

	if stock := productStock(t, db, product.ID); stock != 3 {
		t.Fatalf("stock want 3 got %d", stock)
	}

	view, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be cleared got %d items", len(view.Items))
	}
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	product := createProduct(t, db, "Cheddar", "4.80", 10)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "5 Depot Avenue",
		PaymentMethod:   constants.PaymentMethodOnline,
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// 商品改名改价后，订单行快照不变
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{"name": "Renamed", "price": "99.99"}).Error; err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	got, err := orderSvc.Get(1, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Items[0].ProductName != "Cheddar" || got.Items[0].UnitPrice.String() != "4.80" {
		t.Fatalf("snapshot changed: %+v", got.Items[0])
	}
}

func TestPlaceOrderStockConflictRollsBack(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	cheap := createProduct(t, db, "Banana", "2.20", 10)
	scarce := createProduct(t, db, "Truffle", "50.00", 3)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: cheap.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: scarce.ID, Quantity: 3}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// 下单前库存被其他买家消耗
	if err := db.Model(&models.Product{}).Where("id = ?", scarce.ID).
		Update("stock", 1).Error; err != nil {
		t.Fatalf("update stock failed: %v", err)
	}

	_, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "88 Market Street",
		PaymentMethod:   constants.PaymentMethodOnline,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}

	// 整单回滚：已扣减的第一件商品库存恢复，购物车保留
	if stock := productStock(t, db, cheap.ID); stock != 10 {
		t.Fatalf("cheap stock want 10 got %d", stock)
	}
	if stock := productStock(t, db, scarce.ID); stock != 1 {
		t.Fatalf("scarce stock want 1 got %d", stock)
	}
	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("no order should exist got %d", orderCount)
	}
	view, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("cart should keep 2 items got %d", len(view.Items))
	}
}

func TestPlaceOrderStockConflictIdentifiesProduct(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	cheap := createProduct(t, db, "Banana", "2.20", 10)
	scarce := createProduct(t, db, "Saffron", "50.00", 3)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: cheap.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: scarce.ID, Quantity: 3}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", scarce.ID).
		Update("stock", 1).Error; err != nil {
		t.Fatalf("update stock failed: %v", err)
	}

	_, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "88 Market Street",
		PaymentMethod:   constants.PaymentMethodOnline,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}

	// 多行购物车冲突时，错误指明具体商品
	var conflict *StockConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want StockConflictError got %v", err)
	}
	if conflict.ProductID != scarce.ID {
		t.Fatalf("conflict product want %d got %d", scarce.ID, conflict.ProductID)
	}
	if !strings.Contains(err.Error(), fmt.Sprint(scarce.ID)) {
		t.Fatalf("error message should name product %d: %q", scarce.ID, err.Error())
	}
}

func TestConcurrentCheckoutLastUnit(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	product := createProduct(t, db, "Last Unit", "7.00", 1)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item for user 1 failed: %v", err)
	}
	if _, err := cartSvc.AddItem(2, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item for user 2 failed: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, userID := range []uint{1, 2} {
		wg.Add(1)
		go func(idx int, uid uint) {
			defer wg.Done()
			_, err := orderSvc.PlaceOrder(uid, PlaceOrderInput{
				DeliveryAddress: "12 Lakeview Road",
				PaymentMethod:   constants.PaymentMethodOnline,
			})
			results[idx] = err
		}(i, userID)
	}
	wg.Wait()

	successes := 0
	stockConflicts := 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrInsufficientStock):
			stockConflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || stockConflicts != 1 {
		t.Fatalf("want exactly one success and one stock conflict, got %d/%d", successes, stockConflicts)
	}

	if stock := productStock(t, db, product.ID); stock != 0 {
		t.Fatalf("final stock want 0 got %d", stock)
	}
	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 1 {
		t.Fatalf("exactly one order should exist got %d", orderCount)
	}
}

func TestPlaceOrderInvalidInput(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	product := createProduct(t, db, "Rice", "9.99", 10)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if _, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "  ",
		PaymentMethod:   constants.PaymentMethodOnline,
	}); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("want ErrInvalidAddress got %v", err)
	}
	if _, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "12 Lakeview Road",
		PaymentMethod:   "bitcoin",
	}); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("want ErrInvalidPaymentMethod got %v", err)
	}
}

func TestCancelRestoresStock(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	product := createProduct(t, db, "Milk", "1.50", 5)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "12 Lakeview Road",
		PaymentMethod:   constants.PaymentMethodOnline,
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if stock := productStock(t, db, product.ID); stock != 3 {
		t.Fatalf("stock want 3 got %d", stock)
	}

	canceled, err := orderSvc.Cancel(1, order.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled {
		t.Fatalf("status want canceled got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}
	if stock := productStock(t, db, product.ID); stock != 5 {
		t.Fatalf("stock want 5 after cancel got %d", stock)
	}

	// 已取消订单不能再取消或收货
	if _, err := orderSvc.Cancel(1, order.ID); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("want ErrOrderStateInvalid got %v", err)
	}
	if _, err := orderSvc.MarkDelivered(1, order.ID); !errors.Is(err, ErrOrderStateInvalid) {
		t.Fatalf("want ErrOrderStateInvalid got %v", err)
	}
}

func TestOrderOwnership(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	product := createProduct(t, db, "Flour", "4.50", 5)

	if _, err := cartSvc.AddItem(1, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := orderSvc.PlaceOrder(1, PlaceOrderInput{
		DeliveryAddress: "12 Lakeview Road",
		PaymentMethod:   constants.PaymentMethodOnline,
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// 其他用户查询该订单视同不存在
	if _, err := orderSvc.Get(2, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
	if _, err := orderSvc.Cancel(2, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
}
