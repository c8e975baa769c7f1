package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"table-reserve/internal/domain/member"
	"table-reserve/internal/handler/api"
	"table-reserve/internal/handler/middleware"
	"table-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	storeHandler *api.StoreHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, storeHandler, reservationHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	storeHandler *api.StoreHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	members := engine.Group("/members")
	{
		addRoutes(members, []route{
			{Method: http.MethodPost, Path: "/user/signup", Handler: authHandler.SignUpUser},
			{Method: http.MethodPost, Path: "/owner/signup", Handler: authHandler.SignUpPartner},
			{Method: http.MethodPost, Path: "/signin", Handler: authHandler.Login},
		})
	}

	stores := engine.Group("/stores")
	{
		addRoutes(stores, []route{
			{Method: http.MethodGet, Path: "", Handler: storeHandler.Search},
			{Method: http.MethodGet, Path: "/:storeId", Handler: storeHandler.Get},
			{Method: http.MethodGet, Path: "/:storeId/reviews", Handler: storeHandler.ListReviews},
		})

		partnerOnly := stores.Group("")
		partnerOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(member.RolePartner))
		addRoutes(partnerOnly, []route{
			{Method: http.MethodPost, Path: "/new", Handler: storeHandler.Create},
		})

		userOnly := stores.Group("")
		userOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(member.RoleUser))
		addRoutes(userOnly, []route{
			{Method: http.MethodPost, Path: "/:storeId/add-reserve", Handler: reservationHandler.BookFromStore},
		})
	}

	reserves := engine.Group("/reserves")
	reserves.Use(authMiddleware.RequireAuth())
	{
		addRoutes(reserves, []route{
			{Method: http.MethodPost, Path: "/new", Handler: reservationHandler.Book,
				Mw: []gin.HandlerFunc{authMiddleware.RequireRole(member.RoleUser)}},
			{Method: http.MethodGet, Path: "/user", Handler: reservationHandler.ListForMember},
			{Method: http.MethodGet, Path: "/owner", Handler: reservationHandler.ListForOwner,
				Mw: []gin.HandlerFunc{authMiddleware.RequireRole(member.RolePartner)}},
			{Method: http.MethodGet, Path: "/owner/:reserveId", Handler: reservationHandler.GetForOwner},
			{Method: http.MethodPatch, Path: "/owner/:reserveId/cancel", Handler: reservationHandler.CancelForOwner},
			{Method: http.MethodGet, Path: "/:reserveId", Handler: reservationHandler.GetForMember},
			{Method: http.MethodPatch, Path: "/:reserveId/cancel", Handler: reservationHandler.CancelForMember},
			{Method: http.MethodPatch, Path: "/:reserveId/arrive", Handler: reservationHandler.ConfirmArrival},
			{Method: http.MethodPost, Path: "/:reserveId/review", Handler: reviewHandler.Create,
				Mw: []gin.HandlerFunc{authMiddleware.RequireRole(member.RoleUser)}},
		})
	}

	reviews := engine.Group("/reviews")
	reviews.Use(authMiddleware.RequireAuth())
	{
		addRoutes(reviews, []route{
			{Method: http.MethodGet, Path: "/user", Handler: reviewHandler.ListForMember},
			{Method: http.MethodGet, Path: "/owner", Handler: reviewHandler.ListForOwner,
				Mw: []gin.HandlerFunc{authMiddleware.RequireRole(member.RolePartner)}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
