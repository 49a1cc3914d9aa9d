package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/serdarekici/inventory-management/internal/domain"
)

// xlsxRecords reads the first sheet of an XLSX file into CSV-shaped records.
// The sheet is expected to carry a header row compatible with the CSV
// parsers.
func xlsxRecords(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		records = append(records, record)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}

	return records, nil
}

// LoadPartsFile loads a part catalog from CSV or XLSX based on extension.
func LoadPartsFile(path string) ([]domain.Part, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err := xlsxRecords(path)
		if err != nil {
			return nil, err
		}
		return partsFromRecords(records, path)
	case ".csv":
		return LoadParts(path)
	default:
		return nil, fmt.Errorf("unsupported parts file extension %s (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadDemandHistoryFile loads demand history from CSV or XLSX based on
// extension.
func LoadDemandHistoryFile(path string) ([]domain.DemandObservation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err := xlsxRecords(path)
		if err != nil {
			return nil, err
		}
		return demandFromRecords(records, path)
	case ".csv":
		return LoadDemandHistory(path)
	default:
		return nil, fmt.Errorf("unsupported demand history extension %s (want .csv or .xlsx)", filepath.Ext(path))
	}
}
