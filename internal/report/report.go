// Package report renders assignment exports.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wavepark/shift-manager/internal/domain"
)

// SheetName is the worksheet holding the XLSX export.
const SheetName = "Assignments"

// AssignmentColumns is the fixed header of every assignment export.
var AssignmentColumns = []string{
	"Assignment ID",
	"Shift",
	"Location",
	"Start",
	"End",
	"Employee",
	"Task",
	"Note",
	"Check In",
	"Check Out",
}

// AssignmentRecords flattens assignments into rows matching AssignmentColumns.
// Missing optional values become empty strings.
func AssignmentRecords(details []domain.AssignmentDetail) [][]string {
	records := make([][]string, 0, len(details))
	for _, d := range details {
		task := ""
		if d.Task != nil {
			task = d.Task.Name
		}
		records = append(records, []string{
			strconv.FormatInt(d.ID, 10),
			d.Shift.Name,
			d.Shift.Location,
			d.Shift.StartsAt.Format(time.RFC3339),
			d.Shift.EndsAt.Format(time.RFC3339),
			d.Employee.FullName(),
			task,
			stringOrEmpty(d.Note),
			clockOrEmpty(d.CheckInTime),
			clockOrEmpty(d.CheckOutTime),
		})
	}
	return records
}

// WriteAssignmentsCSV writes the header row followed by one row per assignment.
func WriteAssignmentsCSV(w io.Writer, details []domain.AssignmentDetail) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(AssignmentColumns); err != nil {
		return err
	}
	if err := writer.WriteAll(AssignmentRecords(details)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteAssignmentsXLSX writes a single-sheet workbook with a bold header row.
// The assignment id column is numeric, everything else is text.
func WriteAssignmentsXLSX(w io.Writer, details []domain.AssignmentDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(AssignmentColumns))
	for i, col := range AssignmentColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(AssignmentColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	for i, record := range AssignmentRecords(details) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]any, len(record))
		row[0] = details[i].ID
		for j := 1; j < len(record); j++ {
			row[j] = record[j]
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "B", lastCol, 18); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clockOrEmpty(c *domain.ClockTime) string {
	if c == nil {
		return ""
	}
	return c.String()
}
