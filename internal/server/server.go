package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dmorales/recetario/internal/cook"
	"github.com/dmorales/recetario/internal/database"
	"github.com/dmorales/recetario/internal/favorite"
	"github.com/dmorales/recetario/internal/fridge"
	"github.com/dmorales/recetario/internal/handler"
	"github.com/dmorales/recetario/internal/history"
	"github.com/dmorales/recetario/internal/ingredient"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/metrics"
	"github.com/dmorales/recetario/internal/profile"
	"github.com/dmorales/recetario/internal/recipe"
	"github.com/dmorales/recetario/internal/user"
)

// Services bundles every domain service the router depends on
type Services struct {
	User       user.Service
	Ingredient ingredient.Service
	Fridge     fridge.Service
	Recipe     recipe.Service
	Cook       cook.Service
	Favorite   favorite.Service
	History    history.Service
	Profile    profile.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Unit conversion
		r.Get("/convert", handler.HandleConvert())

		// Ingredient catalog routes
		r.Route("/ingredients", func(r chi.Router) {
			r.Post("/", handler.HandleCreateIngredient(services.Ingredient))
			r.Get("/", handler.HandleGetIngredients(services.Ingredient))
			r.Get("/{ingredientID}", handler.HandleGetIngredient(services.Ingredient))
			r.Put("/{ingredientID}", handler.HandleUpdateIngredient(services.Ingredient))
			r.Delete("/{ingredientID}", handler.HandleDeleteIngredient(services.Ingredient))
		})

		// Recipe catalog routes
		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", handler.HandleCreateRecipe(services.Recipe))
			r.Get("/", handler.HandleGetRecipes(services.Recipe))
			r.Get("/popular", handler.HandleGetPopularRecipes(services.Recipe))
			r.Get("/recommended", handler.HandleGetRecommendedRecipes(services.Recipe))
			r.Post("/search/exact", handler.HandleSearchExact(services.Recipe))
			r.Post("/search/proximity", handler.HandleSearchByProximity(services.Recipe))
			r.Get("/{recipeID}", handler.HandleGetRecipe(services.Recipe))
			r.Put("/{recipeID}", handler.HandleUpdateRecipe(services.Recipe))
			r.Post("/{recipeID}/rate", handler.HandleRateRecipe(services.Recipe))
		})

		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterUser(services.User))
			r.Get("/lookup", handler.HandleGetUserByUsername(services.User))

			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetUser(services.User))
				r.Put("/", handler.HandleUpdateUser(services.User))
				r.Delete("/", handler.HandleDeleteUser(services.User))

				r.Route("/fridge", func(r chi.Router) {
					r.Get("/", handler.HandleGetFridge(services.Fridge))
					r.Post("/", handler.HandleAddToFridge(services.Fridge))
					r.Delete("/", handler.HandleRemoveFromFridge(services.Fridge))
					r.Put("/", handler.HandleOverwriteFridge(services.Fridge))
				})

				r.Post("/cook", handler.HandleCookRecipe(services.Cook))

				r.Route("/favorites", func(r chi.Router) {
					r.Get("/", handler.HandleGetFavorites(services.Favorite))
					r.Post("/", handler.HandleAddFavorite(services.Favorite))
					r.Delete("/{recipeID}", handler.HandleRemoveFavorite(services.Favorite))
				})

				r.Route("/history", func(r chi.Router) {
					r.Get("/", handler.HandleGetHistory(services.History))
					r.Post("/", handler.HandleRecordView(services.History))
					r.Delete("/", handler.HandleClearHistory(services.History))
				})

				r.Route("/profile", func(r chi.Router) {
					r.Get("/", handler.HandleGetProfile(services.Profile))
					r.Put("/", handler.HandleSaveProfile(services.Profile))
					r.Delete("/", handler.HandleDeleteProfile(services.Profile))
				})
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
