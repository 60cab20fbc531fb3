package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	return r
}

func postJSON(r *gin.Engine, path string, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", utils.GenerateJWTSecret())
	r := authRouter()

	w := postJSON(r, "/auth/register", gin.H{
		"email":    "Jane@Example.com",
		"name":     "Jane Doe",
		"password": "customer123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// stored lowercased, so login (which lowercases too) can find it
	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "jane@example.com").Error)
	assert.Equal(t, "jane@example.com", user.Email)

	w = postJSON(r, "/auth/login", gin.H{
		"email":    "JANE@EXAMPLE.COM",
		"password": "customer123",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRegisterRejectsCaseVariantDuplicate(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", utils.GenerateJWTSecret())
	r := authRouter()

	w := postJSON(r, "/auth/register", gin.H{
		"email":    "jane@example.com",
		"name":     "Jane Doe",
		"password": "customer123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(r, "/auth/register", gin.H{
		"email":    "Jane@Example.COM",
		"name":     "Jane Doe",
		"password": "customer123",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", utils.GenerateJWTSecret())
	r := authRouter()

	w := postJSON(r, "/auth/register", gin.H{
		"email":    "jane@example.com",
		"name":     "Jane Doe",
		"password": "customer123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(r, "/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}
