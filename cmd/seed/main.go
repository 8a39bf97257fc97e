package main

import (
	"github.com/livemart/internal/config"
	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/logger"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"
	"github.com/livemart/internal/service"

	"github.com/shopspring/decimal"
)

type seedUser struct {
	email    string
	password string
	name     string
	phone    string
	role     string
	address  string
}

type seedProduct struct {
	name        string
	description string
	category    string
	sellerEmail string
	unit        string
	price       string
	stock       int
}

var seedUsers = []seedUser{
	{"alice@example.com", "password123", "Alice", "13800000001", constants.RoleCustomer, "12 Lakeview Road"},
	{"bob.fresh@example.com", "password123", "Bob's Fresh Produce", "13800000002", constants.RoleRetailer, "88 Market Street"},
	{"carol.dairy@example.com", "password123", "Carol Dairy Wholesale", "13800000003", constants.RoleWholesaler, "5 Depot Avenue"},
}

var seedCategories = []models.Category{
	{Name: "Fruits", Description: "Fresh seasonal fruits"},
	{Name: "Vegetables", Description: "Farm vegetables"},
	{Name: "Dairy", Description: "Milk, cheese and eggs"},
	{Name: "Grains", Description: "Rice, flour and cereals"},
}

var seedProducts = []seedProduct{
	{"Apple", "Crisp red apples", "Fruits", "bob.fresh@example.com", "kg", "3.50", 120},
	{"Banana", "Ripe bananas", "Fruits", "bob.fresh@example.com", "dozen", "2.20", 80},
	{"Tomato", "Vine tomatoes", "Vegetables", "bob.fresh@example.com", "kg", "1.80", 200},
	{"Spinach", "Leafy spinach bundles", "Vegetables", "bob.fresh@example.com", "bundle", "1.20", 60},
	{"Whole Milk", "Pasteurized whole milk 1L", "Dairy", "carol.dairy@example.com", "bottle", "1.50", 300},
	{"Cheddar Cheese", "Aged cheddar block 250g", "Dairy", "carol.dairy@example.com", "piece", "4.80", 90},
	{"Basmati Rice", "Long grain rice 5kg", "Grains", "carol.dairy@example.com", "bag", "9.99", 150},
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	userRepo := repository.NewUserRepository(models.DB)
	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	authService := service.NewAuthService(userRepo, cfg.JWT.SecretKey, cfg.JWT.ExpireHours)

	// 用户（重复执行时跳过已存在记录）
	sellers := map[string]uint{}
	for _, su := range seedUsers {
		existing, err := userRepo.GetByEmail(su.email)
		if err != nil {
			stdLog.Fatalf("查询用户失败: %v", err)
		}
		if existing == nil {
			existing, err = authService.Register(service.RegisterInput{
				Email:    su.email,
				Password: su.password,
				Name:     su.name,
				Phone:    su.phone,
				Role:     su.role,
				Address:  su.address,
			})
			if err != nil {
				stdLog.Fatalf("创建用户 %s 失败: %v", su.email, err)
			}
			stdLog.Printf("已创建用户: %s (%s)", su.email, su.role)
		}
		if constants.IsSellerRole(su.role) {
			sellers[su.email] = existing.ID
		}
	}

	// 分类
	categories := map[string]uint{}
	for _, sc := range seedCategories {
		existing, err := categoryRepo.GetByName(sc.Name)
		if err != nil {
			stdLog.Fatalf("查询分类失败: %v", err)
		}
		if existing == nil {
			category := sc
			if err := categoryRepo.Create(&category); err != nil {
				stdLog.Fatalf("创建分类 %s 失败: %v", sc.Name, err)
			}
			existing = &category
			stdLog.Printf("已创建分类: %s", sc.Name)
		}
		categories[existing.Name] = existing.ID
	}

	// 商品
	for _, sp := range seedProducts {
		sellerID, ok := sellers[sp.sellerEmail]
		if !ok {
			stdLog.Fatalf("商品 %s 的卖家 %s 不存在", sp.name, sp.sellerEmail)
		}
		categoryID, ok := categories[sp.category]
		if !ok {
			stdLog.Fatalf("商品 %s 的分类 %s 不存在", sp.name, sp.category)
		}

		var count int64
		if err := models.DB.Model(&models.Product{}).
			Where("name = ? AND seller_id = ?", sp.name, sellerID).
			Count(&count).Error; err != nil {
			stdLog.Fatalf("查询商品失败: %v", err)
		}
		if count > 0 {
			continue
		}

		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			stdLog.Fatalf("商品 %s 价格非法: %v", sp.name, err)
		}
		product := &models.Product{
			CategoryID:  categoryID,
			SellerID:    sellerID,
			Name:        sp.name,
			Description: sp.description,
			Unit:        sp.unit,
			Price:       models.NewMoneyFromDecimal(price),
			Stock:       sp.stock,
			Available:   true,
		}
		if err := productRepo.Create(product); err != nil {
			stdLog.Fatalf("创建商品 %s 失败: %v", sp.name, err)
		}
		stdLog.Printf("已创建商品: %s", sp.name)
	}

	stdLog.Printf("种子数据初始化完成")
}
