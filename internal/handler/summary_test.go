package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/store"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/ticket"
)

func newSummaryRouter(t *testing.T) (*store.Store, http.Handler) {
	t.Helper()
	s := store.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Now = func() time.Time {
		return time.Date(2026, time.August, 28, 13, 0, 0, 0, time.UTC)
	}
	r := chi.NewRouter()
	SummaryHandler{Store: s, Currency: "USD"}.RegisterRoutes(r)
	return s, r
}

func payOrder(t *testing.T, s *store.Store, name string, price domain.Money, qty int, method domain.PaymentMethod) {
	t.Helper()
	id, err := s.AddOrder([]domain.OrderItem{{
		ProductID:   "PRD-1",
		ProductName: name,
		Price:       price,
		Quantity:    qty,
	}}, nil, domain.ServiceTakeout)
	require.NoError(t, err)
	require.NoError(t, s.RecordPayment(id, method))
}

func TestSummaryGet(t *testing.T) {
	s, r := newSummaryRouter(t)
	payOrder(t, s, "Burrito", 500, 2, domain.PaymentCash)
	payOrder(t, s, "Esquites", 250, 1, domain.PaymentTransfer)
	require.NoError(t, s.SetInitialCash(3000))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Date          string `json:"date"`
			InitialCash   int64  `json:"initialCash"`
			TotalCash     int64  `json:"totalCash"`
			TotalTransfer int64  `json:"totalTransfer"`
			TotalSales    int64  `json:"totalSales"`
			SalesByProduct map[string]struct {
				Quantity int   `json:"quantity"`
				Total    int64 `json:"total"`
			} `json:"salesByProduct"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "2026-08-28", resp.Data.Date)
	require.Equal(t, int64(3000), resp.Data.InitialCash)
	require.Equal(t, int64(1000), resp.Data.TotalCash)
	require.Equal(t, int64(250), resp.Data.TotalTransfer)
	require.Equal(t, int64(1250), resp.Data.TotalSales)
	require.Equal(t, 2, resp.Data.SalesByProduct["Burrito"].Quantity)
}

func TestSummaryExport(t *testing.T) {
	s, r := newSummaryRouter(t)
	payOrder(t, s, "Burrito", 500, 1, domain.PaymentCash)

	t.Run("csv by default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary/export", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), "total_cash,5.00")
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary/export?format=xlsx", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		require.NotEmpty(t, rec.Body.Bytes())
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary/export?format=pdf", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	r := chi.NewRouter()
	HealthHandler{Tickets: ticket.NewMemoryStore()}.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
