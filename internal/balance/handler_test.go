package balance

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/sharedtab/billsplit/pkg/middleware"
)

// newComposedRouter mirrors how main wires the balance endpoints onto
// the group router, with stand-ins for the group method handlers.
func newComposedRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(mw.DevUserMiddleware)

	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("group-detail"))
	})
	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("group-update"))
	})
	h.Register(r)

	return r
}

func TestRegisterKeepsGroupDetailRoutesReachable(t *testing.T) {
	svc := newTestService([]int64{1, 2}, nil, nil, map[int64]string{1: "alice", 2: "bob"})
	r := newComposedRouter(NewHandler(svc))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "group-detail", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "group-update", rec.Body.String())
}

func TestRegisterServesBalanceRoutes(t *testing.T) {
	svc := newTestService([]int64{1, 2}, nil, nil, map[int64]string{1: "alice", 2: "bob"})
	r := newComposedRouter(NewHandler(svc))

	for _, path := range []string{
		"/5/balances",
		"/5/balances/members",
		"/5/balances/with/2",
		"/5/settlements",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
		assert.Contains(t, rec.Body.String(), `"success":true`, "GET %s", path)
	}
}
