package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/roster"
	"github.com/meetingworks/rollcall/pkg/summary"
)

// Sheet names in the summary workbook.
const (
	sheetSummary      = "Summary Report"
	sheetRoster       = "Delegate Roster"
	sheetUnmatched    = "Unmatched Attendees"
	sheetUnregistered = "Unregistered Attendees"
	sheetFull         = "Full Annotated Data"
)

// WriteSummary writes the multi-sheet XLSX summary workbook: headline
// metrics, the delegate roster sorted for roll call, the unmatched and
// unregistered lists, and the full annotated table.
func WriteSummary(path string, s *summary.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	// The workbook starts with a single default sheet; rename it so the
	// summary lands first.
	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := writeMetrics(f, s.Report()); err != nil {
		return errors.WrapIO("write", path, err)
	}

	for _, sheet := range []struct {
		name    string
		records []roster.Record
	}{
		{sheetRoster, s.DelegateRoster()},
		{sheetUnmatched, s.Unmatched()},
		{sheetUnregistered, s.Unregistered()},
		{sheetFull, s.Records()},
	} {
		if err := writeRecordSheet(f, sheet.name, sheet.records); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("create", path, err)
	}
	return nil
}

// writeMetrics fills the summary sheet with metric/value pairs.
func writeMetrics(f *excelize.File, r summary.Report) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Attendees (in Zoom)", r.TotalAttendees},
		{"Total Groups with at least one Delegate", r.GroupsWithDelegate},
		{"Unmatched Attendees (for manual check)", r.UnmatchedCount},
		{"Unregistered Attendees (in Zoom but not registered)", r.UnregisteredCount},
	}
	return writeRows(f, sheetSummary, rows)
}

// writeRecordSheet creates a sheet holding annotated records with the same
// columns as the attendance CSV.
func writeRecordSheet(f *excelize.File, name string, records []roster.Record) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(records)+1)
	header := make([]interface{}, len(attendanceHeaders))
	for i, h := range attendanceHeaders {
		header[i] = h
	}
	rows = append(rows, header)

	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.DisplayName,
			rec.Email,
			rec.LocalGroup,
			rec.RegistrationLabel(),
			rec.RoleLabel(),
			rec.MatchRule(),
		})
	}
	return writeRows(f, name, rows)
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
