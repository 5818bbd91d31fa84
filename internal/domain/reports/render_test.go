package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	rows := []SummaryRow{
		{EmployeeID: "e1", Name: "Asha Rao", Email: "asha@example.com", Sick: 7, Casual: 10, Paid: 15, Maternity: 90, UsedDays: 3},
		{EmployeeID: "e2", Name: "Ben Ortiz", Email: "ben@example.com", Sick: 10, Casual: 8, Paid: 12, Maternity: 90, UsedDays: 5},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "employee_id,name,email,sick,casual,paid,maternity,used_days" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "e1,Asha Rao,asha@example.com,7,10,15,90,3" {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestWritePDF(t *testing.T) {
	rows := []SummaryRow{
		{EmployeeID: "e1", Name: "Asha Rao", Email: "asha@example.com", Sick: 7, Casual: 10, Paid: 15, Maternity: 90, UsedDays: 3},
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, rows, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", buf.Bytes()[:8])
	}
}
