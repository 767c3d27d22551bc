package router

import (
	"time"

	"feriapos/internal/config"
	"feriapos/internal/handler"
	"feriapos/internal/infra"
	"feriapos/internal/middleware"
	"feriapos/internal/repository"
	"feriapos/internal/service"
	"feriapos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns the configured Gin engine plus the
// worker handlers for the async pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, worker.Handlers) {
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.ClientOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	eventoRepo := repository.NewEventoRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, rdb)
	cajaSvc := service.NewCajaService(cajaRepo)
	ventaSvc := service.NewVentaService(ventaRepo, cajaRepo, productoRepo, dispatcher)
	eventoSvc := service.NewEventoService(eventoRepo)
	turnoSvc := service.NewTurnoService(turnoRepo, eventoRepo, usuarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	usuariosH := handler.NewUsuarioHandler(authSvc)
	productosH := handler.NewProductoHandler(productoSvc)
	categoriasH := handler.NewCategoriaHandler(productoSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentaHandler(ventaSvc)
	eventosH := handler.NewEventoHandler(eventoSvc)
	turnosH := handler.NewTurnoHandler(turnoSvc)
	comandasH := handler.NewComandaHandler(ventaSvc, dispatcher, cfg.ComandaStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/verify", authH.Verify)

		// Roles: vendedor, coordinador, admin — declared per-endpoint
		caja := v1.Group("/caja")
		{
			caja.POST("/abrir", middleware.RequireRol("vendedor", "coordinador", "admin"), cajaH.Abrir)
			caja.PUT("/cerrar", middleware.RequireRol("vendedor", "coordinador", "admin"), cajaH.Cerrar)
			caja.GET("/actual", middleware.RequireRol("vendedor", "coordinador", "admin"), cajaH.Actual)
			caja.GET("/resumen", middleware.RequireRol("vendedor", "coordinador", "admin"), cajaH.Resumen)
			caja.GET("/reporte", middleware.RequireRol("coordinador", "admin"), cajaH.Reporte)
		}

		v1.POST("/ventas", middleware.RequireRol("vendedor", "coordinador", "admin"), ventasH.Registrar)
		v1.GET("/ventas/caja/:caja_id", middleware.RequireRol("coordinador", "admin"), ventasH.ListarPorCaja)
		v1.GET("/reportes/ventas", middleware.RequireRol("coordinador", "admin"), ventasH.ReportePorEvento)

		v1.GET("/comandas/:venta_id", middleware.RequireRol("vendedor", "coordinador", "admin"), comandasH.Obtener)

		// Catalog — reads for everyone, writes for coordinador/admin
		v1.GET("/productos", middleware.RequireRol("vendedor", "coordinador", "admin"), productosH.Listar)
		v1.GET("/productos/:id", middleware.RequireRol("vendedor", "coordinador", "admin"), productosH.Obtener)
		prods := v1.Group("/productos", middleware.RequireRol("coordinador", "admin"))
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/restaurar", productosH.Restaurar)
		}
		v1.GET("/categorias", middleware.RequireRol("vendedor", "coordinador", "admin"), categoriasH.Listar)

		eventos := v1.Group("/eventos")
		{
			eventos.GET("", middleware.RequireRol("vendedor", "coordinador", "admin"), eventosH.Listar)
			eventos.GET("/activo", middleware.RequireRol("vendedor", "coordinador", "admin"), eventosH.Activo)
			eventos.POST("", middleware.RequireRol("coordinador", "admin"), eventosH.Crear)
			eventos.PUT("/:id", middleware.RequireRol("coordinador", "admin"), eventosH.Editar)
			eventos.PATCH("/:id/estado", middleware.RequireRol("coordinador", "admin"), eventosH.CambiarEstado)
			eventos.DELETE("/:id", middleware.RequireRol("admin"), eventosH.Eliminar)
		}

		turnos := v1.Group("/turnos", middleware.RequireRol("coordinador", "admin"))
		{
			turnos.POST("", turnosH.Crear)
			turnos.GET("/evento/:evento_id", turnosH.ListarPorEvento)
			turnos.PUT("/:id", turnosH.Editar)
			turnos.DELETE("/:id", turnosH.Eliminar)
			turnos.POST("/asignar", turnosH.Asignar)
			turnos.GET("/:id/asignaciones", turnosH.ListarAsignaciones)
			turnos.PATCH("/asignaciones/:id", turnosH.EditarRolAsignado)
			turnos.DELETE("/asignaciones/:id", turnosH.EliminarAsignacion)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireRol("admin", "coordinador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if !cfg.IsProd() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handlers := worker.Handlers{
		Comanda: worker.NewComandaWorker(ventaRepo, dispatcher, cfg.ComandaStoragePath),
		Email:   worker.NewEmailWorker(mailer),
	}
	return r, handlers
}
