// Package rationmarketplace предоставляет маршруты для основного приложения.
package rationmarketplace

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/health"
	rationcreate "github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/ration/create"
	rationlist "github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/ration/list"
	"github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/user/assignration"
	"github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/user/assignworkcenter"
	"github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/user/info"
	workcentercreate "github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/workcenter/create"
	workcenterlist "github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/workcenter/list"
	workcenterread "github.com/magabrotheeeer/ration-marketplace/internal/http/handlers/workcenter/read"
	"github.com/magabrotheeeer/ration-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/ration-marketplace/internal/services/auth"
	rationservice "github.com/magabrotheeeer/ration-marketplace/internal/services/ration"
	userservice "github.com/magabrotheeeer/ration-marketplace/internal/services/user"
	workcenterservice "github.com/magabrotheeeer/ration-marketplace/internal/services/workcenter"
	"github.com/magabrotheeeer/ration-marketplace/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage,
	jwtMaker jwt.Maker,
	authService *authservice.AuthService,
	workCenterService *workcenterservice.WorkCenterService,
	rationService *rationservice.RationService,
	userService *userservice.UserService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/users", register.New(logger, authService).ServeHTTP)
		r.Post("/auth", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/work-centers", workcenterlist.New(logger, workCenterService).ServeHTTP)
			r.Get("/work-centers/{id}", workcenterread.New(logger, workCenterService).ServeHTTP)

			// Конечные точки владельца: subject токена сверяется с {userId}
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.CheckUserMiddleware(logger))

				r.Post("/work-center/{userId}", workcentercreate.New(logger, workCenterService).ServeHTTP)
				r.Post("/ration/{userId}", rationcreate.New(logger, rationService).ServeHTTP)
				r.Post("/rations/{userId}", rationlist.New(logger, rationService).ServeHTTP)
				r.Patch("/user/assignWorkCenter/{userId}", assignworkcenter.New(logger, userService).ServeHTTP)
				r.Patch("/user/assignRation/{userId}", assignration.New(logger, userService).ServeHTTP)
				r.Get("/user/{userId}", info.New(logger, userService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
