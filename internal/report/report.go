// Package report writes the attendance view as a spreadsheet.
package report

import (
	"fmt"
	"io"

	"go-workforce/internal/view"

	"github.com/xuri/excelize/v2"
)

const SheetAttendance = "Attendance"

var attendanceHeaders = []string{"Date", "Employee ID", "Employee", "Status"}

// WriteAttendance writes rows as an XLSX workbook to w, one row per record
// below a header row.
func WriteAttendance(w io.Writer, rows []view.AttendanceRow) error {
	f, err := buildAttendance(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveAttendance writes the workbook to path, replacing any existing file.
func SaveAttendance(path string, rows []view.AttendanceRow) error {
	f, err := buildAttendance(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func buildAttendance(rows []view.AttendanceRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetAttendance); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range attendanceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetAttendance, cell, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(SheetAttendance, 1, 1, bold)
	}
	_ = f.SetColWidth(SheetAttendance, "A", "B", 14)
	_ = f.SetColWidth(SheetAttendance, "C", "C", 28)

	for i, r := range rows {
		values := []any{r.Date, r.Employee, r.EmployeeName, string(r.Status)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(SheetAttendance, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	return f, nil
}
