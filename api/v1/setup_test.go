package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prodcat-api/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter builds the full route table against a fresh in-memory
// database, so these tests exercise the same stack a deployment runs.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group(""))
	return router
}

// request performs a JSON request against the router. body may be nil;
// token, when non-empty, is sent as a bearer token.
func request(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// decode unmarshals a response body into a generic map.
func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, router *gin.Engine) string {
	t.Helper()
	recorder := request(t, router, http.MethodPost, "/register", map[string]any{
		"name":                  "Bob",
		"email":                 "bob@example.com",
		"password":              "password",
		"password_confirmation": "password",
	}, "")
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	token, _ := decode(t, recorder)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// fieldErrors digs the field error list out of an error envelope.
func fieldErrors(t *testing.T, payload map[string]any, field string) []any {
	t.Helper()
	errs, _ := payload["errors"].(map[string]any)
	require.NotNil(t, errs, "missing errors object in %v", payload)
	list, _ := errs[field].([]any)
	return list
}
