package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminConfigHarness(t *testing.T) *harness {
	cfg := testConfig()
	cfg.AdminPassword = "s3cret"
	return newHarness(t, cfg, true)
}

func TestAdminDisabledWithoutPassword(t *testing.T) {
	h := newHarness(t, testConfig(), true)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/admin/login", nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/admin/dashboard", nil).Code)
}

func TestAdminRequiresLogin(t *testing.T) {
	h := adminConfigHarness(t)

	rec := h.do(http.MethodGet, "/admin/dashboard", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	rec = h.do(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	h.jar = append(h.jar, &http.Cookie{Name: adminCookie, Value: "forged"})
	rec = h.do(http.MethodGet, "/admin/api/stats", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdminDashboard(t *testing.T) {
	h := adminConfigHarness(t)

	rec := h.do(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	h.do(http.MethodGet, "/go/linkedin", nil)

	rec = h.do(http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")
	assert.Contains(t, rec.Body.String(), "linkedin")

	rec = h.do(http.MethodGet, "/admin/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.NotEmpty(t, stats)

	rec = h.do(http.MethodGet, "/admin/export/stats", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "admin-stats.json")

	rec = h.do(http.MethodPost, "/admin/privacy/cleanup", url.Values{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":0}`, rec.Body.String())
}

func TestCredentialsMatch(t *testing.T) {
	assert.True(t, credentialsMatch("admin", "pw", "admin", "pw"))
	assert.False(t, credentialsMatch("admin", "pw", "admin", "other"))
	assert.False(t, credentialsMatch("root", "pw", "admin", "pw"))
	assert.False(t, credentialsMatch("", "", "admin", "pw"))
}
