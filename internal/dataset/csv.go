package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/serdarekici/inventory-management/internal/domain"
)

var columnNameSanitizer = strings.NewReplacer(" ", "", "_", "", ".", "", "-", "", "/", "")

func normalizeColumnName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return columnNameSanitizer.Replace(name)
}

// header indexes columns by normalized name so input files survive header
// variations like "unit_cost" vs "UnitCost".
type header struct {
	index map[string]int
}

func newHeader(record []string) header {
	h := header{index: make(map[string]int, len(record))}
	for i, name := range record {
		key := normalizeColumnName(name)
		if _, exists := h.index[key]; !exists {
			h.index[key] = i
		}
	}
	return h
}

func (h header) col(names ...string) int {
	for _, name := range names {
		if i, ok := h.index[normalizeColumnName(name)]; ok {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseFloat(record []string, idx int) float64 {
	v := field(record, idx)
	if v == "" {
		return 0
	}
	v = strings.ReplaceAll(v, ",", "")
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func parseInt(record []string, idx int) int {
	// Integer columns sometimes arrive as "12.0" from spreadsheet exports.
	return int(parseFloat(record, idx))
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

func parseDate(record []string, idx int) (time.Time, error) {
	v := field(record, idx)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", v)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// LoadParts reads the part catalog table from a CSV file.
func LoadParts(path string) ([]domain.Part, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	return partsFromRecords(records, path)
}

// LoadDemandHistory reads the demand history table from a CSV file.
func LoadDemandHistory(path string) ([]domain.DemandObservation, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	return demandFromRecords(records, path)
}

// partsFromRecords parses and validates part catalog records (header row
// first). Structural violations name the part and row so the caller can
// report which input row was invalid rather than masking it.
func partsFromRecords(records [][]string, source string) ([]domain.Part, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: parts table must have a header and at least one row", source)
	}

	h := newHeader(records[0])
	idxPartNum := h.col("PartNum", "part_number")
	if idxPartNum < 0 {
		return nil, fmt.Errorf("%s: parts table is missing a PartNum column", source)
	}
	idxDescription := h.col("Description")
	idxOnHand := h.col("OnHandQty", "on_hand")
	idxUnitCost := h.col("UnitCost")
	idxLeadTime := h.col("LeadTimeDays", "lead_time")
	idxMinOrder := h.col("MinOrderQty", "min_order")
	idxPOQty := h.col("TotalPOQty", "po_qty")

	parts := make([]domain.Part, 0, len(records)-1)
	seen := make(map[string]int, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2
		part := domain.Part{
			PartNum:      field(record, idxPartNum),
			Description:  field(record, idxDescription),
			OnHandQty:    parseInt(record, idxOnHand),
			UnitCost:     parseFloat(record, idxUnitCost),
			LeadTimeDays: parseInt(record, idxLeadTime),
			MinOrderQty:  parseInt(record, idxMinOrder),
			TotalPOQty:   parseInt(record, idxPOQty),
		}
		if part.PartNum == "" {
			return nil, fmt.Errorf("%s row %d: empty PartNum", source, rowNum)
		}
		if prev, dup := seen[part.PartNum]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate PartNum %s (first seen row %d)", source, rowNum, part.PartNum, prev)
		}
		seen[part.PartNum] = rowNum
		if part.UnitCost <= 0 {
			return nil, fmt.Errorf("%s row %d: part %s has non-positive unit cost %v", source, rowNum, part.PartNum, part.UnitCost)
		}
		if part.OnHandQty < 0 || part.LeadTimeDays < 0 || part.MinOrderQty < 0 || part.TotalPOQty < 0 {
			return nil, fmt.Errorf("%s row %d: part %s has a negative quantity", source, rowNum, part.PartNum)
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// demandFromRecords parses demand history records. UnitPrice and TotalValue
// are optional; a missing TotalValue is derived as TotalDemand × UnitPrice.
func demandFromRecords(records [][]string, source string) ([]domain.DemandObservation, error) {
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: demand history table must have a header", source)
	}

	h := newHeader(records[0])
	idxPartNum := h.col("PartNum", "part_number")
	idxDate := h.col("Date")
	idxDemand := h.col("TotalDemand", "demand", "qty")
	if idxPartNum < 0 || idxDate < 0 || idxDemand < 0 {
		return nil, fmt.Errorf("%s: demand history needs PartNum, Date and TotalDemand columns", source)
	}
	idxPrice := h.col("UnitPrice")
	idxValue := h.col("TotalValue")

	observations := make([]domain.DemandObservation, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2
		partNum := field(record, idxPartNum)
		if partNum == "" {
			return nil, fmt.Errorf("%s row %d: empty PartNum", source, rowNum)
		}
		date, err := parseDate(record, idxDate)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, rowNum, err)
		}
		demand := parseInt(record, idxDemand)
		if demand < 0 {
			return nil, fmt.Errorf("%s row %d: part %s has negative demand %d", source, rowNum, partNum, demand)
		}

		obs := domain.DemandObservation{
			PartNum:     partNum,
			Date:        date,
			TotalDemand: demand,
			UnitPrice:   parseFloat(record, idxPrice),
		}
		if idxValue >= 0 && field(record, idxValue) != "" {
			obs.TotalValue = parseFloat(record, idxValue)
		} else {
			obs.TotalValue = float64(obs.TotalDemand) * obs.UnitPrice
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV(path string, headers []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

var inventoryParamsHeaders = []string{
	"PartNum", "Description", "Category", "LMH", "NineBox", "vod",
	"AvgMonthlyDemand", "StdMonthlyDemand", "LeadTimeDays",
	"SafetyStock", "ReorderPoint", "EOQ",
	"OnHandQty", "TotalPOQty", "MinOrderQty", "UnitCost", "TotalValue", "ServiceLevel",
}

func inventoryParamsRecord(p domain.InventoryParams) []string {
	return []string{
		p.PartNum,
		p.Description,
		p.Category,
		p.LMH,
		p.NineBox,
		formatFloat(p.Vod),
		formatFloat(p.AvgMonthlyDemand),
		formatFloat(p.StdMonthlyDemand),
		strconv.Itoa(p.LeadTimeDays),
		strconv.Itoa(p.SafetyStock),
		strconv.Itoa(p.ReorderPoint),
		strconv.Itoa(p.EOQ),
		strconv.Itoa(p.OnHandQty),
		strconv.Itoa(p.TotalPOQty),
		strconv.Itoa(p.MinOrderQty),
		formatFloat(p.UnitCost),
		formatFloat(p.TotalValue),
		formatFloat(p.ServiceLevel),
	}
}

// WriteInventoryParams writes the inventory_params output table. Output is
// deterministic for a given input slice, so identical runs produce
// byte-identical files.
func WriteInventoryParams(path string, rows []domain.InventoryParams) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, inventoryParamsRecord(row))
	}
	return writeCSV(path, inventoryParamsHeaders, records)
}

// WriteRecommendations writes the recommendations output table: every
// inventory_params column plus the inventory position and action.
func WriteRecommendations(path string, rows []domain.Recommendation) error {
	headers := append(append([]string{}, inventoryParamsHeaders...),
		"TotalInv", "Action", "Calculated_Quantity", "ChangeValue")

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := append(inventoryParamsRecord(row.InventoryParams),
			strconv.Itoa(row.TotalInv),
			string(row.Action),
			strconv.Itoa(row.CalculatedQty),
			formatFloat(row.ChangeValue),
		)
		records = append(records, record)
	}
	return writeCSV(path, headers, records)
}

// LoadInventoryParams reads a previously written inventory_params table.
// The dashboard consumes the pipeline's output through this reader.
func LoadInventoryParams(path string) ([]domain.InventoryParams, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	h := newHeader(records[0])
	rows := make([]domain.InventoryParams, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, inventoryParamsFromRecord(h, record))
	}
	return rows, nil
}

func inventoryParamsFromRecord(h header, record []string) domain.InventoryParams {
	return domain.InventoryParams{
		PartNum:          field(record, h.col("PartNum")),
		Description:      field(record, h.col("Description")),
		Category:         field(record, h.col("Category")),
		LMH:              field(record, h.col("LMH")),
		NineBox:          field(record, h.col("NineBox", "9_box")),
		Vod:              parseFloat(record, h.col("vod")),
		AvgMonthlyDemand: parseFloat(record, h.col("AvgMonthlyDemand")),
		StdMonthlyDemand: parseFloat(record, h.col("StdMonthlyDemand")),
		LeadTimeDays:     parseInt(record, h.col("LeadTimeDays")),
		SafetyStock:      parseInt(record, h.col("SafetyStock")),
		ReorderPoint:     parseInt(record, h.col("ReorderPoint")),
		EOQ:              parseInt(record, h.col("EOQ")),
		OnHandQty:        parseInt(record, h.col("OnHandQty")),
		TotalPOQty:       parseInt(record, h.col("TotalPOQty")),
		MinOrderQty:      parseInt(record, h.col("MinOrderQty")),
		UnitCost:         parseFloat(record, h.col("UnitCost")),
		TotalValue:       parseFloat(record, h.col("TotalValue")),
		ServiceLevel:     parseFloat(record, h.col("ServiceLevel")),
	}
}

// LoadRecommendations reads a previously written recommendations table.
func LoadRecommendations(path string) ([]domain.Recommendation, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	h := newHeader(records[0])
	rows := make([]domain.Recommendation, 0, len(records)-1)
	for i, record := range records[1:] {
		action, ok := domain.ParseAction(field(record, h.col("Action")))
		if !ok {
			return nil, fmt.Errorf("%s row %d: unknown action %q", path, i+2, field(record, h.col("Action")))
		}
		rows = append(rows, domain.Recommendation{
			InventoryParams: inventoryParamsFromRecord(h, record),
			TotalInv:        parseInt(record, h.col("TotalInv")),
			Action:          action,
			CalculatedQty:   parseInt(record, h.col("Calculated_Quantity")),
			ChangeValue:     parseFloat(record, h.col("ChangeValue")),
		})
	}
	return rows, nil
}
