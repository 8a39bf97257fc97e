package provider

import (
	"github.com/livemart/internal/config"
	"github.com/livemart/internal/models"
	"github.com/livemart/internal/repository"
	"github.com/livemart/internal/service"
)

// Container 服务容器，集中完成依赖装配
type Container struct {
	Config *config.Config

	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	FeedbackRepo repository.FeedbackRepository

	AuthService     *service.AuthService
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
	FeedbackService *service.FeedbackService
}

// NewContainer 创建服务容器
func NewContainer(cfg *config.Config) *Container {
	userRepo := repository.NewUserRepository(models.DB)
	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	cartRepo := repository.NewCartRepository(models.DB)
	orderRepo := repository.NewOrderRepository(models.DB)
	feedbackRepo := repository.NewFeedbackRepository(models.DB)

	return &Container{
		Config: cfg,

		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		CartRepo:     cartRepo,
		OrderRepo:    orderRepo,
		FeedbackRepo: feedbackRepo,

		AuthService:     service.NewAuthService(userRepo, cfg.JWT.SecretKey, cfg.JWT.ExpireHours),
		CategoryService: service.NewCategoryService(categoryRepo),
		ProductService:  service.NewProductService(productRepo, categoryRepo),
		CartService:     service.NewCartService(cartRepo, productRepo),
		OrderService:    service.NewOrderService(models.DB, orderRepo, cartRepo, productRepo),
		FeedbackService: service.NewFeedbackService(models.DB, feedbackRepo, productRepo),
	}
}
