package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/xuri/excelize/v2"
)

func NewService() *service {
	return &service{
		sheet: defaultSheet,
	}
}

// Write creates an xlsx workbook at path with a bold, filterable header row
// followed by rows. Parent directories are created.
func (s *service) Write(path string, header []string, rows [][]any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), s.sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := s.writeRow(f, 1, headerCells); err != nil {
		return err
	}
	for i, row := range rows {
		if err := s.writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if len(header) > 0 {
		if err := s.styleHeader(f, len(header)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func (s *service) writeRow(f *excelize.File, rowNumber int, row []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(s.sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNumber, err)
	}
	return nil
}

func (s *service) styleHeader(f *excelize.File, columns int) error {
	lastColumn, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(s.sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(s.sheet, "A", lastColumn, columnWidth); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.AutoFilter(s.sheet, "A1:"+lastColumn+"1", nil); err != nil {
		return fmt.Errorf("failed to add filter: %w", err)
	}
	return nil
}

// Read returns every row of the first sheet of the workbook at path. Trailing
// empty cells of a row are not returned.
func (s *service) Read(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", model.ErrInputFile, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", model.ErrInputFile, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", model.ErrInputFile, path, err)
	}
	return rows, nil
}
