package sources

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/roster"
)

// Column names in the annotated attendance sheet. These match the writer in
// internal/report so the summary command can consume a previously generated
// sheet.
const (
	colZoomUserName = "zoom_user_name"
	colGroup        = "local group"
	colRegistration = "registered/unregistered"
	colRole         = "delegate/observer"
	colMatchRule    = "match rule"
)

// LoadAttendance reads an annotated attendance sheet back into records,
// reversing the label and trace encoding the writer applied. Row order is
// preserved.
func LoadAttendance(path string) ([]roster.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewValidationError(colZoomUserName, nil, "attendance file has no header row")
	}

	idx := headerIndex(rows[0])
	for _, col := range []string{colZoomUserName, colEmail, colGroup, colRegistration, colRole, colMatchRule} {
		if _, ok := idx[col]; !ok {
			return nil, errors.NewValidationError(col, nil, "required column missing from "+path)
		}
	}

	records := make([]roster.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := roster.Record{
			DisplayName: cell(row, idx[colZoomUserName]),
			Email:       cell(row, idx[colEmail]),
			LocalGroup:  cell(row, idx[colGroup]),
			Registered:  cell(row, idx[colRegistration]) == roster.LabelRegistered,
			Delegate:    cell(row, idx[colRole]) == roster.LabelDelegate,
		}
		if rule := cell(row, idx[colMatchRule]); rule != "" && rule != roster.NoMatchFound {
			rec.Trace = strings.Split(rule, " | ")
		}
		records = append(records, rec)
	}
	return records, nil
}
