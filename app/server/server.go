package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gamecharge/storefront/app/admin"
	"github.com/gamecharge/storefront/app/catalog"
	"github.com/gamecharge/storefront/app/orders"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Catalog *catalog.CatalogHandler
	Orders  *orders.OrderHandler
	Admin   *admin.AdminHandler
}

func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /home", h.Catalog.HandleGetHome)
	mux.HandleFunc("GET /games", h.Catalog.HandleGetGames)
	mux.HandleFunc("GET /games/{id}/products", h.Catalog.HandleGetGameProducts)
	mux.HandleFunc("GET /products/popular", h.Catalog.HandleGetPopular)

	mux.HandleFunc("POST /orders", h.Orders.HandleCreate)
	mux.HandleFunc("GET /orders", h.Orders.HandleListByPhone)

	mux.HandleFunc("POST /admin/seed", h.Admin.HandleSeed)
	mux.HandleFunc("POST /admin/games", h.Admin.HandleCreateGame)
	mux.HandleFunc("PATCH /admin/games/{id}", h.Admin.HandleUpdateGame)
	mux.HandleFunc("POST /admin/products", h.Admin.HandleCreateProduct)
	mux.HandleFunc("PATCH /admin/products/{id}", h.Admin.HandleUpdateProduct)
	return mux
}

// logRequests records method, path, status and duration of every request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.InfoContext(r.Context(), "http request",
			"method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           logRequests(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
