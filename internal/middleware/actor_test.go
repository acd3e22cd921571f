package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, fullName string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID:   1,
		Email:    "ana@example.com",
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

// runActor sends a request through the actor middleware and reports
// whether the downstream handler ran and which actor it saw.
func runActor(t *testing.T, authHeader string) (*httptest.ResponseRecorder, models.Actor, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	router := gin.New()
	router.Use(Actor(testSecret))

	var actor models.Actor
	reached := false
	router.GET("/records", func(c *gin.Context) {
		reached = true
		actor = ActingUser(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/records", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)

	return w, actor, reached
}

func TestActor_NoHeaderProceedsAnonymously(t *testing.T) {
	w, actor, reached := runActor(t, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	_, known := actor.Name()
	assert.False(t, known)
}

func TestActor_ValidTokenResolvesFullName(t *testing.T) {
	token := signedToken(t, "Ana Souza", time.Now().Add(time.Hour))
	w, actor, reached := runActor(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	name, known := actor.Name()
	assert.True(t, known)
	assert.Equal(t, "Ana Souza", name)
}

func TestActor_MalformedTokenIsRejected(t *testing.T) {
	w, _, reached := runActor(t, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.JSONEq(t, `{"status": false, "message": "token inválido"}`, w.Body.String())
}

func TestActor_ExpiredTokenIsRejected(t *testing.T) {
	token := signedToken(t, "Ana Souza", time.Now().Add(-time.Hour))
	w, _, reached := runActor(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.JSONEq(t, `{"status": false, "message": "token expirado"}`, w.Body.String())
}

func TestActor_WrongSchemeIsRejected(t *testing.T) {
	w, _, reached := runActor(t, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.JSONEq(t, `{"status": false, "message": "formato do header Authorization inválido"}`, w.Body.String())
}

func TestActor_WrongSecretIsRejected(t *testing.T) {
	claims := Claims{FullName: "Ana Souza", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	w, _, reached := runActor(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}
