// Order API is an HTTP service reporting on a caller-supplied set of orders.
package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/example/orderdesk/go/pkg/config"
	"github.com/example/orderdesk/go/pkg/fixture"
	"github.com/example/orderdesk/go/pkg/httputil"
	"github.com/example/orderdesk/go/pkg/logging"
	"github.com/example/orderdesk/go/pkg/models"
	"github.com/example/orderdesk/go/pkg/notify"
	"github.com/example/orderdesk/go/pkg/records"
	"go.uber.org/zap"
)

type orderAPI struct {
	orders  []models.Order
	planner *notify.Planner
	logger  *zap.Logger
}

func (a *orderAPI) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("status")
	if q == "" {
		httputil.JSONResponse(w, http.StatusOK, a.orders)
		return
	}
	status, err := models.ParseOrderStatus(q)
	if err != nil {
		a.logger.Debug("rejected status filter", zap.String("status", q))
		httputil.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	httputil.JSONResponse(w, http.StatusOK, records.FilterByStatus(a.orders, status))
}

func (a *orderAPI) handleRevenue(w http.ResponseWriter, r *http.Request) {
	summary := records.Summarize(a.orders)
	httputil.JSONResponse(w, http.StatusOK, map[string]any{
		"total":     summary.Total.StringFixed(2),
		"orders":    summary.Orders,
		"by_status": summary.ByStatus,
	})
}

func (a *orderAPI) handleNotifications(w http.ResponseWriter, r *http.Request) {
	httputil.JSONResponse(w, http.StatusOK, a.planner.Plan(a.orders))
}

func (a *orderAPI) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders", a.handleListOrders)
	mux.HandleFunc("GET /orders/revenue", a.handleRevenue)
	mux.HandleFunc("GET /orders/notifications", a.handleNotifications)
	return mux
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ds, err := fixture.Load(cfg.DataFile)
	if err != nil {
		logger.Fatal("failed to load orders", zap.String("path", cfg.DataFile), zap.Error(err))
	}

	api := &orderAPI{
		orders:  ds.Orders,
		planner: notify.NewPlanner(logger.Named("notify")),
		logger:  logger,
	}

	addr := cfg.Addr
	if addr == "" {
		addr = ":8082"
	}
	logger.Info("Order API listening", zap.String("addr", addr), zap.Int("orders", len(ds.Orders)))
	if err := http.ListenAndServe(addr, api.routes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
