package stubserver

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/infrastructure/logger"
)

// registerValidations installs domain validators on gin's binding engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return inventory.OrderStatus(fl.Field().String()).Valid()
		})
	}
}

// Server wires the stub store to a gin router.
type Server struct {
	store *Store
	log   *zap.Logger
}

// New creates a stub server.
func New(store *Store, log *zap.Logger) *Server {
	return &Server{store: store, log: log}
}

// Router builds the gin engine with all documented routes under /api.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()
	r := gin.New()
	r.Use(logger.Recovery(s.log), logger.GinMiddleware(s.log))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register/", s.handleRegister)
	auth.POST("/login/", s.handleLogin)

	authed := api.Group("", s.tokenAuth())
	authed.POST("/auth/logout/", s.handleLogout)
	authed.GET("/auth/profile/", s.handleGetProfile)
	authed.PUT("/auth/profile/", s.handleUpdateProfile)
	authed.POST("/auth/change-password/", s.handleChangePassword)

	authed.GET("/products/", s.handleListProducts)
	authed.POST("/products/", s.handleCreateProduct)
	authed.PUT("/products/:id/", s.handleUpdateProduct)
	authed.DELETE("/products/:id/", s.handleDeleteProduct)

	authed.GET("/suppliers/", s.handleListSuppliers)
	authed.POST("/suppliers/", s.handleCreateSupplier)
	authed.PUT("/suppliers/:id/", s.handleUpdateSupplier)

	authed.GET("/orders/", s.handleListOrders)
	authed.POST("/orders/", s.handleCreateOrder)

	authed.GET("/users/", s.handleListUsers)

	return r
}
