// Package report writes the pipeline's output files: the annotated
// attendance CSV, the raw participant CSV produced by the fetch command,
// and the multi-sheet XLSX summary workbook.
package report

import (
	"encoding/csv"
	"os"

	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/roster"
)

// attendanceHeaders is the column order of the annotated attendance sheet.
// Downstream spreadsheets and the summary reader depend on these names.
var attendanceHeaders = []string{
	"zoom_user_name", "email", "local group",
	"registered/unregistered", "delegate/observer", "match rule",
}

// WriteAttendance writes the annotated records to a CSV file, one row per
// participant in reconciliation order.
func WriteAttendance(path string, records []roster.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(attendanceHeaders); err != nil {
		return errors.WrapIO("write", path, err)
	}
	for _, r := range records {
		row := []string{
			r.DisplayName,
			r.Email,
			r.LocalGroup,
			r.RegistrationLabel(),
			r.RoleLabel(),
			r.MatchRule(),
		}
		if err := w.Write(row); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
