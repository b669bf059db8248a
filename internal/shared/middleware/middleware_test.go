package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskhub/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *token.Claims
	err    error
}

func (v *stubVerifier) Verify(tokenString string) (*token.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func newGatedEngine(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestGate(verifier, []string{"/public"}))

	engine.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	engine.GET("/protected", func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject, "role": claims.Role})
	})
	engine.DELETE("/admin-only", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	return engine
}

func doRequest(engine *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestGate(t *testing.T) {
	validClaims := token.NewClaims("admin", "admin", time.Now(), time.Hour)

	t.Run("public path bypasses verification", func(t *testing.T) {
		// Verifier that fails on any call; the public path must never consult it
		engine := newGatedEngine(&stubVerifier{err: errors.New("must not be called")})
		rec := doRequest(engine, http.MethodGet, "/public", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		engine := newGatedEngine(&stubVerifier{claims: validClaims})
		rec := doRequest(engine, http.MethodGet, "/protected", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := errorBody(t, rec)
		require.Equal(t, false, body["success"])
		require.Equal(t, "Missing authorization header", body["error"])
	})

	t.Run("malformed header", func(t *testing.T) {
		engine := newGatedEngine(&stubVerifier{claims: validClaims})
		for _, header := range []string{"Basic abc", "bearer lowercase", "Bearernospace"} {
			rec := doRequest(engine, http.MethodGet, "/protected", header)
			require.Equal(t, http.StatusBadRequest, rec.Code, "header %q", header)
			require.Equal(t, "Invalid authorization header format", errorBody(t, rec)["error"])
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		engine := newGatedEngine(&stubVerifier{err: errors.New("bad token")})
		rec := doRequest(engine, http.MethodGet, "/protected", "Bearer garbage")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid token", errorBody(t, rec)["error"])
	})

	t.Run("expired token", func(t *testing.T) {
		engine := newGatedEngine(&stubVerifier{err: token.ErrExpired})
		rec := doRequest(engine, http.MethodGet, "/protected", "Bearer expired")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Token expired", errorBody(t, rec)["error"])
	})

	t.Run("valid token forwards with claims", func(t *testing.T) {
		engine := newGatedEngine(&stubVerifier{claims: validClaims})
		rec := doRequest(engine, http.MethodGet, "/protected", "Bearer valid-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "admin", body["subject"])
		require.Equal(t, "admin", body["role"])
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		claims := token.NewClaims("admin", "admin", time.Now(), time.Hour)
		engine := newGatedEngine(&stubVerifier{claims: claims})
		rec := doRequest(engine, http.MethodDelete, "/admin-only", "Bearer valid-token")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		claims := token.NewClaims("user", "user", time.Now(), time.Hour)
		engine := newGatedEngine(&stubVerifier{claims: claims})
		rec := doRequest(engine, http.MethodDelete, "/admin-only", "Bearer valid-token")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "Insufficient permissions", errorBody(t, rec)["error"])
	})
}
