// Package report renders the daily summary for download or archiving.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatMoney renders cents as a decimal amount ("550" → "5.50").
func FormatMoney(m domain.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%d.%02d", sign, m/100, m%100)
}

func sortedLabels(sum domain.DailySummary) []string {
	labels := make([]string, 0, len(sum.SalesByProduct))
	for label := range sum.SalesByProduct {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// SummaryCSV renders the summary as a totals preamble followed by the
// per-product breakdown.
func SummaryCSV(sum domain.DailySummary) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	_ = w.Write([]string{"date", sum.Date.Format(dateLayout)})
	_ = w.Write([]string{"total_cash", FormatMoney(sum.TotalCash)})
	_ = w.Write([]string{"total_transfer", FormatMoney(sum.TotalTransfer)})
	_ = w.Write([]string{"total_expenses", FormatMoney(sum.TotalExpenses)})
	_ = w.Write([]string{"total_sales", FormatMoney(sum.TotalSales)})
	_ = w.Write([]string{})

	_ = w.Write([]string{"product", "quantity", "total"})
	for _, label := range sortedLabels(sum) {
		row := sum.SalesByProduct[label]
		_ = w.Write([]string{label, fmt.Sprint(row.Quantity), FormatMoney(row.Total)})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// SummaryXLSX renders the summary as a single styled sheet.
func SummaryXLSX(sum domain.DailySummary) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Resumen"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	totals := [][2]string{
		{"Fecha", sum.Date.Format(dateLayout)},
		{"Efectivo", FormatMoney(sum.TotalCash)},
		{"Transferencia", FormatMoney(sum.TotalTransfer)},
		{"Gastos", FormatMoney(sum.TotalExpenses)},
		{"Ventas", FormatMoney(sum.TotalSales)},
	}
	for r, pair := range totals {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", r+1), pair[0])
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", r+1), pair[1])
	}

	headerRow := len(totals) + 2
	header := []string{"Producto", "Cantidad", "Total"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, headerRow)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for i, label := range sortedLabels(sum) {
		row := sum.SalesByProduct[label]
		values := []any{label, row.Quantity, FormatMoney(row.Total)}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, headerRow+1+i)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 14)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("C%d", headerRow), style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
