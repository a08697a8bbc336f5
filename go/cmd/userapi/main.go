// User API is an HTTP service deriving profiles and totals from user records.
package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/example/orderdesk/go/pkg/config"
	"github.com/example/orderdesk/go/pkg/fixture"
	"github.com/example/orderdesk/go/pkg/httputil"
	"github.com/example/orderdesk/go/pkg/logging"
	"github.com/example/orderdesk/go/pkg/models"
	"github.com/example/orderdesk/go/pkg/records"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type userAPI struct {
	users  []models.User
	ids    *records.IDSequence
	logger *zap.Logger
}

type profileRequest struct {
	User   models.User          `json:"user"`
	Config models.ProfileConfig `json:"config"`
}

type totalsRequest struct {
	Prices []decimal.Decimal `json:"prices"`
}

func (a *userAPI) handleListUsers(w http.ResponseWriter, r *http.Request) {
	httputil.JSONResponse(w, http.StatusOK, a.users)
}

func (a *userAPI) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := records.DeriveUserProfileWith(a.ids, req.User, req.Config)
	if errors.Is(err, records.ErrInvalidUser) {
		a.logger.Debug("rejected profile", zap.Error(err))
		httputil.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		a.logger.Error("derive profile", zap.Error(err))
		httputil.ErrorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}
	httputil.JSONResponse(w, http.StatusCreated, profile)
}

func (a *userAPI) handleTotals(w http.ResponseWriter, r *http.Request) {
	var req totalsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	httputil.JSONResponse(w, http.StatusOK, map[string]string{
		"total": records.SumPrices(req.Prices).StringFixed(2),
	})
}

func (a *userAPI) handleStatus(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(r.PathValue("code"))
	if err != nil {
		httputil.ErrorResponse(w, http.StatusBadRequest, "status code must be an integer")
		return
	}
	status, ok := records.ClassifyStatusCode(code)
	if !ok {
		httputil.ErrorResponse(w, http.StatusNotFound, "unknown status code")
		return
	}
	httputil.JSONResponse(w, http.StatusOK, map[string]any{"code": code, "status": status})
}

func (a *userAPI) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", a.handleListUsers)
	mux.HandleFunc("POST /profiles", a.handleCreateProfile)
	mux.HandleFunc("POST /totals", a.handleTotals)
	mux.HandleFunc("GET /status/{code}", a.handleStatus)
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
		logger.Fatal("failed to load users", zap.String("path", cfg.DataFile), zap.Error(err))
	}

	api := &userAPI{
		users:  ds.Users,
		ids:    &records.IDSequence{},
		logger: logger,
	}

	addr := cfg.Addr
	if addr == "" {
		addr = ":8081"
	}
	logger.Info("User API listening", zap.String("addr", addr), zap.Int("users", len(ds.Users)))
	if err := http.ListenAndServe(addr, api.routes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
