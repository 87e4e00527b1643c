package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wavepark/shift-manager/internal/domain"
)

func sampleDetails() []domain.AssignmentDetail {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	note := "lane 3, deep end"
	in := domain.ClockTime{Hour: 7, Minute: 55}
	return []domain.AssignmentDetail{
		{
			ShiftAssignment: domain.ShiftAssignment{ID: 7, ShiftID: 1, EmployeeID: 2, Note: &note, CheckInTime: &in},
			Shift:           domain.Shift{ID: 1, Name: "Morning", Location: "Main Pool", StartsAt: start, EndsAt: start.Add(8 * time.Hour)},
			Employee:        domain.Employee{ID: 2, FirstName: "Ava", LastName: "Marin"},
			Task:            &domain.Task{ID: 3, Name: "Tower watch"},
		},
		{
			ShiftAssignment: domain.ShiftAssignment{ID: 8, ShiftID: 1, EmployeeID: 4},
			Shift:           domain.Shift{ID: 1, Name: "Morning", Location: "Main Pool", StartsAt: start, EndsAt: start.Add(8 * time.Hour)},
			Employee:        domain.Employee{ID: 4, FirstName: "Leo", LastName: "Park"},
		},
	}
}

func TestAssignmentRecords(t *testing.T) {
	records := AssignmentRecords(sampleDetails())
	want := []string{"7", "Morning", "Main Pool", "2024-06-01T08:00:00Z", "2024-06-01T16:00:00Z",
		"Ava Marin", "Tower watch", "lane 3, deep end", "07:55:00", ""}
	if strings.Join(records[0], "|") != strings.Join(want, "|") {
		t.Fatalf("record = %q", records[0])
	}
	if records[1][6] != "" || records[1][7] != "" || records[1][8] != "" {
		t.Fatalf("optional values should be empty: %q", records[1])
	}
}

func TestWriteAssignmentsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAssignmentsCSV(&buf, sampleDetails()); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "Assignment ID,Shift,Location,Start,End,Employee,Task,Note,Check In,Check Out" {
		t.Fatalf("header = %q", rows[0])
	}
	if rows[1][7] != "lane 3, deep end" {
		t.Fatalf("quoted note lost: %q", rows[1][7])
	}
}

func TestWriteAssignmentsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAssignmentsCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}

func TestWriteAssignmentsXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAssignmentsXLSX(&buf, sampleDetails()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("sheets = %v", sheets)
	}
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][0] != "Assignment ID" || rows[0][9] != "Check Out" {
		t.Fatalf("rows = %q", rows)
	}
	if rows[1][0] != "7" || rows[1][5] != "Ava Marin" || rows[2][5] != "Leo Park" {
		t.Fatalf("data rows = %q", rows[1:])
	}
}
