package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/config"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/middleware"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// mediaCacheControl — загруженные файлы неизменяемы, имя каждый раз новое.
const mediaCacheControl = "public, max-age=3600"

// Handlers собирает все HTTP хэндлеры приложения.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Language *handlers.LanguageHandler
	Settings *handlers.SettingsHandler
	Projects *handlers.ProjectHandler
	Contact  *handlers.ContactHandler
	Media    *handlers.MediaHandler
	Pages    *handlers.PageHandler
	Health   *handlers.HealthHandler
	WS       *handlers.WSHandler
	Seed     *handlers.SeedHandler
}

// Guards — проверки доступа для защищённых групп.
type Guards struct {
	Tokens middleware.AccessTokenParser
	Admins middleware.AdminChecker
}

func SetupRouter(cfg *config.Config, h Handlers, guards Guards) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{"^/media/", "/ws$"})))

	if h.Health != nil {
		r.GET("/health", h.Health.Health)
	}

	media := r.Group("/media")
	media.Use(func(c *gin.Context) {
		c.Header("Cache-Control", mediaCacheControl)
		c.Next()
	})
	media.StaticFS("/", http.Dir(cfg.MediaStoragePath))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/media/") {
			c.Header("Cache-Control", "no-store")
		}
		middleware.AbortWithError(c, apperror.New(apperror.ErrCodeNotFound, "not found"))
	})

	api := r.Group("/api")
	api.Use(middleware.Language(cfg.Env == "production"))

	if h.Seed != nil && cfg.Env == "development" {
		api.POST("/seed", h.Seed.Seed)
	}

	// Язык посетителя
	api.GET("/language", h.Language.Get)
	api.POST("/language/toggle", h.Language.Toggle)
	api.PUT("/language", h.Language.Set)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware("auth", cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/signup", h.Auth.SignUp)
		authGroup.POST("/signin", h.Auth.SignIn)
		authGroup.POST("/signout", h.Auth.SignOut)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}
	api.GET("/auth/status", middleware.AuthMiddleware(guards.Tokens), h.Auth.Status)

	// Публичные маршруты
	api.GET("/settings", h.Settings.GetAll)
	api.GET("/settings/:key", h.Settings.Get)

	api.GET("/projects", h.Projects.List)
	api.GET("/projects/featured", h.Projects.Featured)
	api.GET("/projects/:slug", h.Projects.GetBySlug)

	api.POST("/contact", middleware.RateLimitMiddleware("contact", cfg.ContactRateLimit, cfg.RateLimitPeriod), h.Contact.Submit)

	pages := api.Group("/pages")
	{
		pages.GET("/home", h.Pages.Home)
		pages.GET("/portfolio", h.Pages.Portfolio)
		pages.GET("/project/:slug", h.Pages.Project)
		pages.GET("/about", h.Pages.About)
		pages.GET("/contact", h.Pages.Contact)
		pages.GET("/layout", h.Pages.Layout)
	}

	// Админка: 401 без токена, 403 ACCESS_DENIED без роли admin
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(guards.Tokens), middleware.RequireAdmin(guards.Admins))
	{
		admin.GET("/dashboard", h.Pages.Dashboard)

		admin.PUT("/settings/:key", h.Settings.Put)

		admin.GET("/projects", h.Projects.AdminList)
		admin.POST("/projects", h.Projects.Create)
		admin.GET("/projects/new", h.Projects.Template)
		admin.GET("/projects/:id", middleware.UUIDValidator("id"), h.Projects.AdminGet)
		admin.PUT("/projects/:id", middleware.UUIDValidator("id"), h.Projects.Update)
		admin.DELETE("/projects/:id", middleware.UUIDValidator("id"), h.Projects.Delete)
		admin.POST("/projects/:id/featured", middleware.UUIDValidator("id"), h.Projects.ToggleFeatured)

		admin.GET("/messages", h.Contact.List)
		admin.GET("/messages/unread/count", h.Contact.UnreadCount)
		admin.GET("/messages/:id", middleware.UUIDValidator("id"), h.Contact.Get)
		admin.PUT("/messages/:id/read", middleware.UUIDValidator("id"), h.Contact.MarkAsRead)
		admin.DELETE("/messages/:id", middleware.UUIDValidator("id"), h.Contact.Delete)

		admin.POST("/media", h.Media.Upload)
		admin.DELETE("/media/:id", middleware.UUIDValidator("id"), h.Media.Delete)

		if h.WS != nil {
			admin.GET("/ws", h.WS.Handle)
		}
	}

	return r
}
