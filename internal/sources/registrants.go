package sources

import (
	"github.com/xuri/excelize/v2"

	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/roster"
)

// Column names in the CiviCRM participant search export.
const (
	colBillingEmail = "Billing-Email"
	colFirstName    = "First Name"
	colLastName     = "Last Name"
	colLocalGroup   = "Local Group"
)

// LoadRegistrants reads the registration export from the first sheet of an
// XLSX workbook. Billing-Email, First Name, and Last Name are required
// columns; Local Group is optional and empty when absent. Row order is
// preserved.
func LoadRegistrants(path string) ([]roster.Registrant, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.NewValidationError(colBillingEmail, nil, "registrants file has no header row")
	}

	idx := headerIndex(rows[0])
	for _, col := range []string{colBillingEmail, colFirstName, colLastName} {
		if _, ok := idx[col]; !ok {
			return nil, errors.NewValidationError(col, nil, "required column missing from "+path)
		}
	}
	groupCol, hasGroup := idx[colLocalGroup]
	if !hasGroup {
		groupCol = -1
	}

	registrants := make([]roster.Registrant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		registrants = append(registrants, roster.Registrant{
			BillingEmail: cell(row, idx[colBillingEmail]),
			FirstName:    cell(row, idx[colFirstName]),
			LastName:     cell(row, idx[colLastName]),
			LocalGroup:   cell(row, groupCol),
		})
	}
	return registrants, nil
}

// readFirstSheet returns every row of the workbook's first sheet.
func readFirstSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	return rows, nil
}
