package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

func newStateRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := localstore.NewMemory()
	stores := store.NewStores(kv)
	h := NewStateHandler(stores, activity.New(kv))

	r := gin.New()
	r.GET("/state/session", h.Session)
	r.GET("/state/company", h.Company)
	r.GET("/state/payment-account", h.PaymentAccount)
	r.GET("/categories", h.Categories)
	return r, stores
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSessionSnapshotRedactsToken(t *testing.T) {
	r, stores := newStateRouter(t)
	stores.Session.SetLogged(models.User{ID: "u1"}, "tok-super-secreto")

	w := get(t, r, "/state/session")
	require.Equal(t, http.StatusOK, w.Code)

	var st store.SessionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))

	assert.True(t, st.IsLogged)
	assert.Equal(t, "u1", st.User.ID)
	assert.Empty(t, st.Token)

	// o store continua com o token
	assert.Equal(t, "tok-super-secreto", stores.Session.Get().Token)
}

func TestCompanySnapshotStripsPaymentAccount(t *testing.T) {
	r, stores := newStateRouter(t)
	stores.Company.SetCompany(models.Company{
		ID:          "c1",
		MercadoPago: &models.MPAccount{AccessToken: "secreto", Linked: true},
	})

	w := get(t, r, "/state/company")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secreto")
	assert.NotContains(t, w.Body.String(), "mercado_pago")
}

func TestPaymentAccountSnapshotRedactsAccessToken(t *testing.T) {
	r, stores := newStateRouter(t)
	stores.PaymentAccount.SetAccount(models.MPAccount{
		UserID:      "mp-1",
		AccessToken: "secreto",
		Linked:      true,
	})

	w := get(t, r, "/state/payment-account")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mp-1")
	assert.NotContains(t, w.Body.String(), "secreto")
}

func TestCategoriesEndpoint(t *testing.T) {
	r, _ := newStateRouter(t)

	w := get(t, r, "/categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barberia")
	assert.Contains(t, w.Body.String(), "total")
}
