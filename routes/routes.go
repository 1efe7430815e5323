package routes

import (
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/configs"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/controllers"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/middlewares"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/repository"
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, productRepo)
	tableSvc := services.NewTableService(db, tableRepo, orderRepo, cfg.MaxMesas)
	paymentSvc := services.NewPaymentService(db, orderRepo, tableRepo, time.Now().UnixNano())
	paymentSvc.Delay = 2500 * time.Millisecond // simulated terminal time
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productRepo)

	// Auth (staff only; customers order anonymously from the table QR)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Customer
	r.GET("/products", productCtrl.List)
	r.GET("/tables", tableCtrl.List)
	r.GET("/tables/numero/:numero", tableCtrl.GetByNumero) // QR deep link
	r.POST("/tables/:id/release", tableCtrl.Release)

	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/numero/:numero", orderCtrl.DetailByNumero)
	r.GET("/orders/table/:numero", orderCtrl.ListByTable)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.POST("/orders/:id/items", orderCtrl.AddItems)
	r.POST("/orders/:id/ready-to-pay", orderCtrl.ReadyToPay)
	r.DELETE("/orders/:id", orderCtrl.Cancel)

	// Kitchen board
	cocina := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RolCocinero, entity.RolGerente))
	{
		cocina.GET("/orders/pending", orderCtrl.ListPending)
		cocina.DELETE("/orders/:id/dismiss", orderCtrl.Dismiss)
	}

	// Cashier board
	caja := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RolCajero, entity.RolGerente))
	{
		caja.GET("/orders/active", orderCtrl.ListActive)
		caja.GET("/orders/ready-to-pay", orderCtrl.ListReadyToPay)
		caja.POST("/orders/:id/pay", paymentCtrl.Pay)
		caja.PATCH("/tables/:id/estado", tableCtrl.UpdateStatus)
	}

	// Shared staff
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RolCajero, entity.RolCocinero, entity.RolGerente))
	{
		staff.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/status/:estado", orderCtrl.ListByStatus)
		staff.GET("/tables/estado/:estado", tableCtrl.ListByStatus)
	}

	// Manager
	gerente := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RolGerente))
	{
		gerente.POST("/tables", tableCtrl.Create)
		gerente.PATCH("/tables/:id", tableCtrl.Update)
		gerente.DELETE("/tables/:id", tableCtrl.Delete)
	}
}
