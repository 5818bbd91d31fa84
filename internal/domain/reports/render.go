package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

func WriteCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	header := []string{"employee_id", "name", "email", "sick", "casual", "paid", "maternity", "used_days"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.EmployeeID,
			row.Name,
			row.Email,
			fmt.Sprintf("%d", row.Sick),
			fmt.Sprintf("%d", row.Casual),
			fmt.Sprintf("%d", row.Paid),
			fmt.Sprintf("%d", row.Maternity),
			fmt.Sprintf("%d", row.UsedDays),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WritePDF(w io.Writer, rows []SummaryRow, generatedAt time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Balance Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	widths := []float64{70, 80, 22, 22, 22, 26, 24}
	headers := []string{"Name", "Email", "Sick", "Casual", "Paid", "Maternity", "Used"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		cells := []string{
			row.Name,
			row.Email,
			fmt.Sprintf("%d", row.Sick),
			fmt.Sprintf("%d", row.Casual),
			fmt.Sprintf("%d", row.Paid),
			fmt.Sprintf("%d", row.Maternity),
			fmt.Sprintf("%d", row.UsedDays),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 8, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
