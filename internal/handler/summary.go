package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/report"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/store"
)

// SummaryHandler serves the current daily summary as JSON or as a
// downloadable report. Read-only; the POS operations themselves are not
// exposed over HTTP.
type SummaryHandler struct {
	Store    *store.Store
	Currency string
}

func (h SummaryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.get)
	r.Get("/summary/export", h.export)
}

func (h SummaryHandler) get(w http.ResponseWriter, r *http.Request) {
	sum := h.Store.DailySummary()

	products := make(map[string]map[string]any, len(sum.SalesByProduct))
	for label, row := range sum.SalesByProduct {
		products[label] = map[string]any{
			"quantity": row.Quantity,
			"total":    int64(row.Total),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":           sum.Date.Format("2006-01-02"),
		"currency":       h.Currency,
		"initialCash":    int64(h.Store.InitialCash()),
		"totalCash":      int64(sum.TotalCash),
		"totalTransfer":  int64(sum.TotalTransfer),
		"totalExpenses":  int64(sum.TotalExpenses),
		"totalSales":     int64(sum.TotalSales),
		"salesByProduct": products,
	})
}

func (h SummaryHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	sum := h.Store.DailySummary()
	filenameSuffix := sum.Date.Format("20060102")

	switch format {
	case "csv":
		data, err := report.SummaryCSV(sum)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"resumen_%s.csv\"", filenameSuffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := report.SummaryXLSX(sum)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"resumen_%s.xlsx\"", filenameSuffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}
