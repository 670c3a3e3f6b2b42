package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"dampedfilter"
)

// WriteXLSX writes one sheet per section with Parameter/Value columns.
func WriteXLSX(w io.Writer, r dampedfilter.Results) error {
	f := excelize.NewFile()
	defer f.Close()

	const blank = "Sheet1"

	for _, s := range r {
		if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name, err)
		}

		if err := f.SetSheetRow(s.Name, "A1", &[]interface{}{"Parameter", "Value"}); err != nil {
			return err
		}
		for i, field := range s.Fields {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.Name, cell, &[]interface{}{field.Label, field.Value}); err != nil {
				return err
			}
		}
		if err := f.SetColWidth(s.Name, "A", "B", 32); err != nil {
			return err
		}
	}

	if len(r) > 0 {
		if err := f.DeleteSheet(blank); err != nil {
			return err
		}
		idx, err := f.GetSheetIndex(r[0].Name)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	return f.Write(w)
}
