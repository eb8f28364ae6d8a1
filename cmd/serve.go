package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/metrics"
	"github.com/iksnae/comment-filter/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo page over HTTP",
	Long: `Serve the demo page in the browser. The page state is shared by every
visitor, like one browser tab driven from several windows.

Routes:
  GET  /               the page
  POST /login          log in as user_id
  POST /filter/apply   show only the first five users' comments
  POST /filter/clear   show every comment again
  GET  /log            the status log as JSON
  GET  /metrics        Prometheus metrics (unless --metrics-addr is set)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		page, _, err := newPage(s)
		if err != nil {
			return err
		}

		router, err := newRouter(page, cfg.MetricsAddr == "")
		if err != nil {
			return err
		}

		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.MetricsAddr != "" {
			shutdownMetrics := startMetricsServer(cfg.MetricsAddr)
			defer shutdownMetrics()
		}

		server := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()
		internal.PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("Serving %s on http://%s", cfg.Document.Name, addr))

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
			internal.LogInfo("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		}
	},
}

// newRouter wires the page routes and, when withMetrics is set, /metrics
func newRouter(page *internal.Page, withMetrics bool) (*mux.Router, error) {
	handler, err := web.NewHandler(page)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize web handler: %w", err)
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	if withMetrics {
		r.Handle("/metrics", metrics.Handler()).Methods("GET")
	}
	return r, nil
}

// startMetricsServer serves /metrics on addr in the background and returns
// a function that stops it.
func startMetricsServer(addr string) func() {
	m := http.NewServeMux()
	m.Handle("/metrics", metrics.Handler())
	server := &http.Server{Addr: addr, Handler: m, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		internal.LogInfo("serving /metrics on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			internal.LogError("metrics server: %v", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config listen_addr)")
}
