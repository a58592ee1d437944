// Package xlsx loads BOM and wire-cut-list snapshots from Excel workbooks.
// Rows are read from the first sheet and fed through the same column-sniffing
// rules as the CSV loader.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	csvloader "github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/csv"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// Loader handles loading estimator input data from XLSX files
type Loader struct {
	rows *csvloader.Loader
	log  *zap.Logger
}

// NewLoader creates a new XLSX loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{rows: csvloader.NewLoader(log), log: log}
}

// LoadBOM loads BOM items from the first sheet of a workbook
func (l *Loader) LoadBOM(filename string) ([]entities.BOMItem, error) {
	records, err := readFirstSheet(filename)
	if err != nil {
		return nil, err
	}
	items, err := l.rows.ParseBOMRows(records)
	if err != nil {
		return nil, fmt.Errorf("parse BOM workbook %s: %w", filename, err)
	}
	l.log.Info("loaded BOM", zap.String("file", filename), zap.Int("items", len(items)))
	return items, nil
}

// LoadWireCutList loads wire-cut items from the first sheet of a workbook
func (l *Loader) LoadWireCutList(filename string) ([]entities.WireCutItem, error) {
	records, err := readFirstSheet(filename)
	if err != nil {
		return nil, err
	}
	items, err := l.rows.ParseWireCutRows(records)
	if err != nil {
		return nil, fmt.Errorf("parse wire cut workbook %s: %w", filename, err)
	}
	l.log.Info("loaded wire cut list", zap.String("file", filename), zap.Int("items", len(items)))
	return items, nil
}

func readFirstSheet(filename string) ([][]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}
