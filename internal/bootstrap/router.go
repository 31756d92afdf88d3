package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	accountshttp "github.com/StyleMate-25-26J/stylemate-backend/internal/accounts/http"
	accountsrepo "github.com/StyleMate-25-26J/stylemate-backend/internal/accounts/repository"
	accountssvc "github.com/StyleMate-25-26J/stylemate-backend/internal/accounts/service"
	httpapi "github.com/StyleMate-25-26J/stylemate-backend/internal/api/http"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/api/http/middleware"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/session"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/suggestion"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string
	GalleryDir   string

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Engine   *suggestion.Engine
	Sessions *session.Store
	Cookies  session.CookieOptions
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(buildCORS(dep.AllowOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	if dep.GalleryDir != "" {
		r.Static("/static/outfits", dep.GalleryDir)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(session.WithSession(dep.Sessions, dep.Cookies))

	httpapi.NewGalleryHandler().RegisterRoutes(api)
	httpapi.NewSuggestHandler(dep.Engine).RegisterRoutes(api)
	httpapi.NewMetricsHandler().RegisterRoutes(api)

	userRepo := accountsrepo.NewUserRepository(dep.DB)
	accounts := accountssvc.NewAccountService(userRepo)
	accountshttp.Register(api.Group("/auth"), accountshttp.NewHandler(accounts, dep.Sessions, dep.Cookies))

	return r
}

func buildCORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
