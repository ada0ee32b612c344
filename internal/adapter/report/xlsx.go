// Package report renders admin exports as xlsx workbooks.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateLayout = "2006-01-02 15:04"

// Sheet is a single worksheet: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Write renders the sheets into one workbook and writes it to w.
func Write(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		index, err := f.NewSheet(sh.Name)
		if err != nil {
			return fmt.Errorf("new sheet %q: %w", sh.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := fill(f, sh); err != nil {
			return err
		}
	}
	if len(sheets) > 0 && sheets[0].Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func fill(f *excelize.File, sh Sheet) error {
	for col, header := range sh.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sh.Name, cell, header); err != nil {
			return err
		}
	}
	for r, row := range sh.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sh.Name, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

// OrdersSheet lays out orders one per row.
func OrdersSheet(orders []domain.Order) Sheet {
	sh := Sheet{
		Name: "Orders",
		Headers: []string{
			"Order number", "Created", "Product", "Quantity", "Unit price", "Total",
			"Status", "Payment", "Payment method", "Carrier", "Tracking number", "Shipping address",
		},
		Rows: make([][]any, 0, len(orders)),
	}
	for _, o := range orders {
		created := o.CreatedAt
		sh.Rows = append(sh.Rows, []any{
			o.OrderNumber, formatTime(&created), o.ProductName, o.Quantity, o.UnitPrice, o.TotalAmount,
			string(o.Status), string(o.PaymentStatus), o.PaymentMethod, o.Carrier, o.TrackingNumber, o.ShippingAddress,
		})
	}
	return sh
}

// ApprovalsSheet lays out approvals one per row.
func ApprovalsSheet(items []domain.ApprovalDetail) Sheet {
	sh := Sheet{
		Name: "Approvals",
		Headers: []string{
			"ID", "Type", "Status", "Business", "Requester", "Email", "Item",
			"Documents", "Created", "Decided", "Rejection reason", "Admin notes",
		},
		Rows: make([][]any, 0, len(items)),
	}
	for _, a := range items {
		created := a.CreatedAt
		decided := a.ApprovedAt
		if decided == nil {
			decided = a.RejectedAt
		}
		sh.Rows = append(sh.Rows, []any{
			a.ID.String(), string(a.Type), string(a.Status), a.Requester.BusinessName, a.Requester.Name,
			a.Requester.Email, a.ItemName, len(a.Documents), formatTime(&created), formatTime(decided),
			a.RejectionReason, a.AdminNotes,
		})
	}
	return sh
}
