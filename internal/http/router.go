// http собирает публичный HTTP-роутер сервиса: middleware-цепочку,
// маршруты токенов/сессий/контента и административные эндпойнты.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/paygate/access-service/internal/config"
	"github.com/paygate/access-service/internal/http/handlers"
	"github.com/paygate/access-service/internal/http/middleware"
	"github.com/paygate/access-service/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger *slog.Logger
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, cfg *config.Config, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if cfg.Timeouts.Service > 0 {
		root.Use(middleware.Timeout(cfg.Timeouts.Service)) // общий дедлайн запроса
	}

	// Фронт ходит с credentialed-запросами: cookie требует точного origin.
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.PublicBaseURL},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))

	// Зависимости хендлеров.
	h := handlers.New(svc, cfg)

	registerRoutes(root, h, svc, cfg)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service, cfg *config.Config) {
	r.Get("/healthz", h.Healthz)

	// webhook провайдера
	r.Post("/webhook/purchase", h.Webhook)

	// access-токены
	r.Get("/access/{token}", h.AccessState)
	r.Post("/access/{token}", h.Exchange)

	// восстановление доступа
	r.Post("/access/recover", h.RecoverRequest)
	r.Get("/access/recover/{token}", h.RecoverRedeem)

	// сессии
	r.Post("/logout", h.Logout)

	// контент (под сессионной охраной)
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.SessionGuard(svc, cfg.Session.CookieName))
		gr.Get("/content", h.Content)
		gr.Get("/content/material/{key}", h.Material)
	})

	// админ (под bearer-охраной)
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.AdminGuard(cfg.Admin.Token))
		gr.Post("/admin/entitlements", h.SeedEntitlement)
		gr.Delete("/admin/entitlements/{email}", h.RevokeEntitlement)
	})
}
