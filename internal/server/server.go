package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/ShopKeeper_Go/internal/handler"
	"github.com/osse101/ShopKeeper_Go/internal/logger"
	"github.com/osse101/ShopKeeper_Go/internal/metrics"
	"github.com/osse101/ShopKeeper_Go/internal/shop"
	"github.com/osse101/ShopKeeper_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	MaxRequestBytes int64
	Version         string
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, shopService shop.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Public routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(shopService))
			r.Post("/", handler.HandleCreateItem(shopService))
			r.Get("/{id}", handler.HandleGetItem(shopService))
			r.Get("/{id}/form", handler.HandleGetItemForm(shopService))
			r.Put("/{id}", handler.HandleUpdateItem(shopService))
			r.Delete("/{id}", handler.HandleDeleteItem(shopService))
			r.Post("/{id}/buy", handler.HandleBuyItem(shopService))
		})

		r.Route("/selection", func(r chi.Router) {
			r.Get("/", handler.HandleGetSelection(shopService))
			r.Put("/", handler.HandleSelect(shopService))
			r.Delete("/", handler.HandleClearSelection(shopService))
			r.Post("/buy", handler.HandleBuySelected(shopService))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Post("/import", handler.HandleImport(shopService))
			r.Post("/import-file", handler.HandleImportFile(shopService))
			r.Get("/export", handler.HandleExport(shopService))
			r.Post("/export-file", handler.HandleExportFile(shopService))
		})

		r.Get("/events", sse.Handler(hub))
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
	}
	// Event streams never go idle; Shutdown waits on them until the hub
	// closes them.
	httpServer.RegisterOnShutdown(hub.Stop)

	return &Server{
		httpServer: httpServer,
		router:     r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
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
		statusCode:     http.StatusOK,
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

// Flush keeps the event stream working behind the logging wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on an existing listener instead of the
// configured port. It returns http.ErrServerClosed after Stop.
func (s *Server) Serve(l net.Listener) error {
	slog.Info(LogMsgServerStarting, "addr", l.Addr().String())
	return s.httpServer.Serve(l)
}

// Stop stops the server gracefully. Open event streams are ended by
// stopping the hub, so they do not hold shutdown until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	slog.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
