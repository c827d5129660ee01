package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublime247/Lumenpulse/internal/auth"
	"github.com/sublime247/Lumenpulse/internal/router"
	"github.com/sublime247/Lumenpulse/internal/store"
	"github.com/sublime247/Lumenpulse/internal/token"
	"github.com/sublime247/Lumenpulse/internal/vault"
)

var (
	adminHex = common.HexToAddress("0x0A").Hex()
	ownerHex = common.HexToAddress("0x0B").Hex()
	userHex  = common.HexToAddress("0x0C").Hex()
	assetHex = common.HexToAddress("0xAA").Hex()
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := store.NewMemoryStore()
	tokens := token.NewLedger(kv, auth.AllowAll{})
	require.NoError(t, tokens.Initialize(common.HexToAddress(assetHex), common.HexToAddress(adminHex), 7, "Lumen", "LMN"))
	v := vault.New(kv, tokens, auth.AllowAll{}, nil, common.HexToAddress("0xFE"))
	return router.Setup(v, tokens)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	r := newServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", envelope(t, w)["status"])
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	r := newServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/vault/initialize",
		`{"admin":"`+adminHex+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects",
		`{"owner":"`+ownerHex+`","name":"solar_farm","targetAmount":"1000000","asset":"`+assetHex+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/0/deposits",
		`{"user":"`+userHex+`","amount":"400"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "solar_farm", data["name"])
	assert.Equal(t, "400", data["totalDeposited"])
	assert.Equal(t, "400", data["balance"])
	assert.Equal(t, float64(1), data["contributorCount"])
	assert.Equal(t, false, data["milestoneApproved"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/0/match", "")
	require.Equal(t, http.StatusOK, w.Code)
	match := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "400", match["amount"])
}

func TestErrorStatusMapping(t *testing.T) {
	r := newServer(t)

	// Before initialization the vault rejects operations as a conflict.
	w := doJSON(t, r, http.MethodGet, "/api/v1/vault/status", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/vault/initialize",
		`{"admin":"`+adminHex+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Unknown project.
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-admin milestone approval.
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/0/milestone/approve",
		`{"admin":"`+userHex+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Malformed address.
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects",
		`{"owner":"not-an-address","name":"p","targetAmount":"1","asset":"`+assetHex+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Paused vault rejects deposits with 503.
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects",
		`{"owner":"`+ownerHex+`","name":"p","targetAmount":"1000","asset":"`+assetHex+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/vault/pause",
		`{"admin":"`+adminHex+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/0/deposits",
		`{"user":"`+userHex+`","amount":"1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
