package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/orderdesk/go/pkg/models"
	"github.com/example/orderdesk/go/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAPI() *userAPI {
	return &userAPI{
		users:  []models.User{{Name: "Alice", Email: "alice@example.com"}},
		ids:    &records.IDSequence{},
		logger: zap.NewNop(),
	}
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestListUsers(t *testing.T) {
	w := serve(newTestAPI().routes(), http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestCreateProfile(t *testing.T) {
	body := `{"user":{"name":"Alice","email":"alice@example.com","age":25},"config":{"is_admin":true}}`
	w := serve(newTestAPI().routes(), http.MethodPost, "/profiles", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var p models.UserProfile
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "User: Alice (Admin)", p.Display)
	assert.Equal(t, "alice@example.com", p.Contact)
	require.NotNil(t, p.Age)
	assert.Equal(t, 25, *p.Age)
}

func TestCreateProfileRejects(t *testing.T) {
	h := newTestAPI().routes()

	w := serve(h, http.MethodPost, "/profiles", `{"user":{"name":"","email":"x@y.com"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(h, http.MethodPost, "/profiles", `{"user":{"name":"X","email":""}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(h, http.MethodPost, "/profiles", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTotals(t *testing.T) {
	h := newTestAPI().routes()

	w := serve(h, http.MethodPost, "/totals", `{"prices":[10.50, 20.00, 5.25]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "35.75", body["total"])

	w = serve(h, http.MethodPost, "/totals", `{"prices":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "0.00", body["total"])
}

func TestStatus(t *testing.T) {
	h := newTestAPI().routes()

	w := serve(h, http.MethodGet, "/status/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Active", body.Status)

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/status/0", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/status/-5", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/status/abc", "").Code)
}
