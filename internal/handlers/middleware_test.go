package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/checkout"
	"storefront/internal/kv"
	"storefront/internal/models"
	"storefront/internal/session"
)

func newSessionStore() *session.Store {
	return session.NewStore(kv.New(time.Minute), time.Minute)
}

func newTestRouter(sessions *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware(sessions))
	return router
}

func TestSessionMiddleware(t *testing.T) {
	sessions := newSessionStore()
	router := newTestRouter(sessions)
	router.GET("/me", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ctxUserID), "role": c.GetString(ctxRole)})
	})

	t.Run("no token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token in header", func(t *testing.T) {
		token := sessions.Create("u1", models.RoleCustomer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Session-Token", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	})

	t.Run("token in cookie", func(t *testing.T) {
		token := sessions.Create("u2", models.RoleCustomer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u2"`)
	})

	t.Run("destroyed session stops resolving", func(t *testing.T) {
		token := sessions.Create("u3", models.RoleCustomer)
		sessions.Destroy(token)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Session-Token", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	sessions := newSessionStore()
	router := newTestRouter(sessions)
	router.GET("/admin", RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		token := sessions.Create("u1", models.RoleCustomer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("X-Session-Token", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token := sessions.Create("a1", models.RoleAdmin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("X-Session-Token", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPaymentSummaryIsSingleUse(t *testing.T) {
	sessions := newSessionStore()
	h := NewCheckoutHandler(nil, nil, nil, nil, sessions)

	router := newTestRouter(sessions)
	router.GET("/summary", RequireAuth(), h.PaymentSummary)

	token := sessions.Create("u1", models.RoleCustomer)
	require.NoError(t, sessions.StashFlash(token, checkout.PaymentSummary{
		OrderNumber:   7,
		InvoiceNumber: 3,
		Total:         "28.75",
	}))

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/summary", nil)
		req.Header.Set("X-Session-Token", token)
		router.ServeHTTP(w, req)
		return w
	}

	first := get()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), `"total":"28.75"`)

	// La segunda lectura ya no encuentra el resumen
	second := get()
	assert.Equal(t, http.StatusNotFound, second.Code)
}
