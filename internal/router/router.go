package router

import (
	"time"

	"comandapos/internal/config"
	"comandapos/internal/handler"
	"comandapos/internal/middleware"
	"comandapos/internal/repository"
	"comandapos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	tipoProductoRepo := repository.NewTipoProductoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	arqueoRepo := repository.NewArqueoRepository(db)
	movimientoCajaRepo := repository.NewMovimientoCajaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	tipoProductoSvc := service.NewTipoProductoService(tipoProductoRepo, productoRepo)
	productoSvc := service.NewProductoService(productoRepo, tipoProductoRepo)
	inventarioSvc := service.NewInventarioService(inventarioRepo, productoRepo)
	arqueoSvc := service.NewArqueoService(arqueoRepo)
	movimientoCajaSvc := service.NewMovimientoCajaService(movimientoCajaRepo, arqueoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, arqueoRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	tiposH := handler.NewTiposProductoHandler(tipoProductoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	arqueosH := handler.NewArqueosHandler(arqueoSvc)
	movimientosCajaH := handler.NewMovimientosCajaHandler(movimientoCajaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Price check — no auth required
	r.GET("/v1/precio/:id", consultaH.GetPrecio)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin(usuarioRepo)
	v1 := r.Group("/v1", jwtMW)
	{
		// Own profile
		v1.GET("/auth/perfil", authH.Perfil)
		v1.PUT("/auth/perfil", authH.ActualizarPerfil)
		v1.PUT("/auth/password", authH.CambiarPassword)

		// Usuarios — administrador only
		usuarios := v1.Group("/usuarios", adminMW)
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		// Tipos de producto — reads for everyone, writes for administrador
		v1.GET("/tipos-producto", tiposH.Listar)
		v1.GET("/tipos-producto/:id", tiposH.Obtener)
		tipos := v1.Group("/tipos-producto", adminMW)
		{
			tipos.POST("", tiposH.Crear)
			tipos.PUT("/:id", tiposH.Actualizar)
			tipos.DELETE("/:id", tiposH.Eliminar)
		}

		// Productos
		v1.GET("/productos", productosH.Listar)
		v1.GET("/productos/buscar", productosH.Buscar)
		v1.GET("/productos/tipo/:tipoId", productosH.PorTipo)
		v1.GET("/productos/:id", productosH.Obtener)
		prods := v1.Group("/productos", adminMW)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.PATCH("/:id/stock", productosH.AjustarStock)
			prods.DELETE("/:id", productosH.Eliminar)
			prods.PATCH("/:id/desactivar", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
		}

		// Inventario — movement ledger
		inv := v1.Group("/inventario")
		{
			inv.POST("/movimientos", adminMW, inventarioH.Crear)
			inv.GET("/movimientos", inventarioH.Listar)
			inv.GET("/movimientos/rango", inventarioH.PorRango)
			inv.GET("/movimientos/tipo/:tipo", inventarioH.PorTipo)
			inv.GET("/movimientos/producto/:productoId", inventarioH.PorProducto)
			inv.GET("/movimientos/:id", inventarioH.Obtener)
			inv.PUT("/movimientos/:id", adminMW, inventarioH.Actualizar)
			inv.DELETE("/movimientos/:id", adminMW, inventarioH.Eliminar)
			inv.GET("/balance/:productoId", inventarioH.Balance)
		}

		// Arqueos de caja
		arqueos := v1.Group("/arqueos")
		{
			arqueos.POST("", arqueosH.Abrir)
			arqueos.GET("/activo", arqueosH.Activo)
			arqueos.GET("/propios", arqueosH.Propios)
			arqueos.GET("/abiertos", adminMW, arqueosH.ListarAbiertos)
			arqueos.GET("", adminMW, arqueosH.ListarTodos)
			arqueos.GET("/:id", arqueosH.Obtener)
			arqueos.PUT("/:id/cerrar", arqueosH.Cerrar)
			arqueos.PUT("/:id", adminMW, arqueosH.Actualizar)
			arqueos.DELETE("/:id", adminMW, arqueosH.Eliminar)
		}

		// Movimientos de caja — writes are administrador only
		movs := v1.Group("/movimientos-caja")
		{
			movs.POST("", adminMW, movimientosCajaH.Crear)
			movs.GET("/arqueo/:arqueoId", movimientosCajaH.PorArqueo)
			movs.GET("/:id", movimientosCajaH.Obtener)
			movs.PUT("/:id", adminMW, movimientosCajaH.Actualizar)
			movs.DELETE("/:id", adminMW, movimientosCajaH.Eliminar)
		}

		// Pedidos
		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", adminMW, pedidosH.Listar)
			pedidos.GET("/propios", pedidosH.Propios)
			pedidos.GET("/arqueo/:arqueoId", adminMW, pedidosH.PorArqueo)
			pedidos.GET("/estado/:estado", adminMW, pedidosH.PorEstado)
			pedidos.GET("/:id", pedidosH.Obtener)
			pedidos.PUT("/:id/estado", adminMW, pedidosH.ActualizarEstado)
			pedidos.PUT("/:id/cancelar", pedidosH.Cancelar)
			pedidos.PUT("/:id/total", pedidosH.RecalcularTotal)
			pedidos.PUT("/:id", adminMW, pedidosH.Actualizar)
		}

		// Detalles de pedido
		detalles := v1.Group("/detalles-pedido")
		{
			detalles.POST("", pedidosH.CrearDetalle)
			detalles.GET("/pedido/:pedidoId", pedidosH.ListarDetalles)
			detalles.GET("/:id", pedidosH.ObtenerDetalle)
			detalles.PUT("/:id", pedidosH.ActualizarDetalle)
			detalles.DELETE("/:id", pedidosH.EliminarDetalle)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
