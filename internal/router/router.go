package router

import (
	"fmt"
	"strings"

	"github.com/livemart/internal/cache"
	"github.com/livemart/internal/config"
	apihandlers "github.com/livemart/internal/http/handlers/api"
	"github.com/livemart/internal/logger"
	"github.com/livemart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "lm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", handler.ListCategories)
			public.GET("/categories/:id", handler.GetCategory)
			public.GET("/products", handler.ListProducts)
			public.GET("/products/:id", handler.GetProduct)
			public.GET("/feedback/product/:product_id", handler.ListProductFeedback)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.Login)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", handler.Profile)

			user.GET("/cart", handler.GetCart)
			user.POST("/cart/items", handler.AddCartItem)
			user.PUT("/cart/items/:id", handler.UpdateCartItem)
			user.DELETE("/cart/items/:id", handler.RemoveCartItem)
			user.DELETE("/cart", handler.ClearCart)

			user.POST("/orders", handler.PlaceOrder)
			user.GET("/orders", handler.ListOrders)
			user.GET("/orders/:id", handler.GetOrder)
			user.POST("/orders/:id/cancel", handler.CancelOrder)
			user.POST("/orders/:id/deliver", handler.DeliverOrder)

			user.POST("/feedback", handler.SubmitFeedback)

			seller := user.Group("/seller")
			{
				seller.POST("/categories", handler.CreateCategory)
				seller.GET("/products", handler.ListSellerProducts)
				seller.POST("/products", handler.CreateProduct)
				seller.PUT("/products/:id", handler.UpdateProduct)
				seller.DELETE("/products/:id", handler.DeleteProduct)
			}
		}
	}

	return r
}
