// Package csv loads BOM and wire-cut-list snapshots from CSV files. Column
// sniffing, default-value substitution, and description-based categorization
// all happen here; the core only ever sees well-formed item records.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// Loader handles loading estimator input data from CSV files
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a new CSV loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// LoadBOM loads BOM items from a CSV file
func (l *Loader) LoadBOM(filename string) ([]entities.BOMItem, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("read BOM CSV: %w", err)
	}
	items, err := l.ParseBOMRows(records)
	if err != nil {
		return nil, fmt.Errorf("parse BOM CSV %s: %w", filename, err)
	}
	l.log.Info("loaded BOM", zap.String("file", filename), zap.Int("items", len(items)))
	return items, nil
}

// LoadWireCutList loads wire-cut items from a CSV file
func (l *Loader) LoadWireCutList(filename string) ([]entities.WireCutItem, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("read wire cut list CSV: %w", err)
	}
	items, err := l.ParseWireCutRows(records)
	if err != nil {
		return nil, fmt.Errorf("parse wire cut list CSV %s: %w", filename, err)
	}
	l.log.Info("loaded wire cut list", zap.String("file", filename), zap.Int("items", len(items)))
	return items, nil
}

// ParseBOMRows converts raw rows (header first) into BOM items. Rows with a
// missing part number get a synthesized AUTO-<row> part number; a missing
// category is inferred from the description.
func (l *Loader) ParseBOMRows(records [][]string) ([]entities.BOMItem, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row")
	}

	headers := normalizeHeaders(records[0])
	partNumberCol := findColumn(headers, "part number", "partnumber", "part_number", "partno", "part no", "item", "component")
	descriptionCol := findColumn(headers, "description", "desc", "name", "component name", "item description")
	quantityCol := findColumn(headers, "quantity", "qty", "count", "amount")
	categoryCol := findColumn(headers, "category", "type", "class", "group")
	lengthCol := findColumn(headers, "length", "len", "size")
	gaugeCol := findColumn(headers, "gauge", "wire gauge", "awg", "size")

	l.log.Debug("BOM column mapping",
		zap.Int("partNumber", partNumberCol),
		zap.Int("description", descriptionCol),
		zap.Int("quantity", quantityCol),
		zap.Int("category", categoryCol),
		zap.Int("length", lengthCol),
		zap.Int("gauge", gaugeCol),
	)

	var items []entities.BOMItem
	for row, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}

		partNumber := cell(record, partNumberCol)
		if partNumber == "" {
			partNumber = fmt.Sprintf("AUTO-%d", row+1)
		}
		description := cell(record, descriptionCol)
		if description == "" {
			description = "Unknown Component"
		}

		quantity := entities.Quantity(1)
		if raw := cell(record, quantityCol); raw != "" {
			if q, err := strconv.ParseInt(raw, 10, 64); err == nil && q > 0 {
				quantity = entities.Quantity(q)
			}
		}

		category := entities.Category(cell(record, categoryCol))
		if category == "" {
			category = CategorizeDescription(description)
		}

		length := 0.0
		if raw := cell(record, lengthCol); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				length = v
			}
		}

		items = append(items, entities.BOMItem{
			ID:          fmt.Sprintf("bom-%d", row+1),
			PartNumber:  partNumber,
			Description: description,
			Quantity:    quantity,
			Category:    category,
			Length:      length,
			WireGauge:   cell(record, gaugeCol),
		})
	}

	return items, nil
}

// ParseWireCutRows converts raw rows (header first) into wire-cut items.
// Named columns are preferred; files without recognizable headers fall back
// to the template column order.
func (l *Loader) ParseWireCutRows(records [][]string) ([]entities.WireCutItem, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row")
	}

	headers := normalizeHeaders(records[0])
	wireIDCol := fallback(findColumn(headers, "wire id", "wireid"), 0)
	fromCol := fallback(findColumn(headers, "from point", "from"), 1)
	toCol := fallback(findColumn(headers, "to point", "to"), 2)
	lengthCol := fallback(findColumn(headers, "length"), 3)
	gaugeCol := fallback(findColumn(headers, "wire gauge", "gauge"), 4)
	colorCol := fallback(findColumn(headers, "color", "colour"), 5)
	quantityCol := fallback(findColumn(headers, "quantity", "qty"), 6)

	var items []entities.WireCutItem
	for row, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("row %d: expected at least 5 columns, got %d", row+2, len(record))
		}

		wireID := cell(record, wireIDCol)
		if wireID == "" {
			wireID = fmt.Sprintf("W%d", row+1)
		}

		length := 0.0
		if raw := cell(record, lengthCol); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				length = v
			}
		}

		quantity := entities.Quantity(1)
		if raw := cell(record, quantityCol); raw != "" {
			if q, err := strconv.ParseInt(raw, 10, 64); err == nil && q > 0 {
				quantity = entities.Quantity(q)
			}
		}

		items = append(items, entities.WireCutItem{
			ID:        fmt.Sprintf("wire-%d", row+1),
			WireID:    wireID,
			FromPoint: cell(record, fromCol),
			ToPoint:   cell(record, toCol),
			Length:    length,
			WireGauge: cell(record, gaugeCol),
			Color:     cell(record, colorCol),
			Quantity:  quantity,
		})
	}

	return items, nil
}

// CategorizeDescription infers a built-in BOM category from a free-text part
// description.
func CategorizeDescription(description string) entities.Category {
	desc := strings.ToLower(description)
	switch {
	case containsAny(desc, "wire", "cable"):
		return entities.CategoryWire
	case containsAny(desc, "connector", "plug", "socket"):
		return entities.CategoryConnector
	case containsAny(desc, "terminal", "crimp"):
		return entities.CategoryTerminal
	case containsAny(desc, "tube", "sleeve", "tape", "wrap"):
		return entities.CategoryProtection
	case containsAny(desc, "clip", "tie", "bracket"):
		return entities.CategoryHardware
	default:
		return entities.CategoryOther
	}
}

func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func normalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// findColumn matches headers fuzzily: a header matches a candidate when it
// contains it, with whitespace-insensitive comparison as a second chance.
func findColumn(headers []string, candidates ...string) int {
	for _, candidate := range candidates {
		squashedCandidate := strings.ReplaceAll(candidate, " ", "")
		for i, header := range headers {
			if strings.Contains(header, candidate) ||
				strings.Contains(strings.ReplaceAll(header, " ", ""), squashedCandidate) {
				return i
			}
		}
	}
	return -1
}

func fallback(col, def int) int {
	if col < 0 {
		return def
	}
	return col
}

func cell(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[col])
}

func isEmptyRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
