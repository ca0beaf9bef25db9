// Package xlsxexport пишет табличные данные в Excel файлы
package xlsxexport

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength = 31

var errNoSheet = errors.New("xlsxexport: no active sheet")

// Workbook Excel книга с построчной записью
type Workbook struct {
	file       *excelize.File
	sheet      string
	currentRow int
}

// NewWorkbook создает книгу с одним листом name
func NewWorkbook(name string) *Workbook {
	if len(name) > maxSheetNameLength {
		name = name[:maxSheetNameLength]
	}
	f := excelize.NewFile()
	_ = f.SetSheetName("Sheet1", name)
	return &Workbook{file: f, sheet: name, currentRow: 1}
}

// WriteHeader пишет заголовки колонок жирным шрифтом
func (w *Workbook) WriteHeader(columns []string) error {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	headerRow := w.currentRow
	if err := w.WriteRow(row); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsxexport: header style: %w", err)
	}
	startCell, _ := excelize.CoordinatesToCellName(1, headerRow)
	endCell, _ := excelize.CoordinatesToCellName(len(columns), headerRow)
	return w.file.SetCellStyle(w.sheet, startCell, endCell, style)
}

// WriteRow пишет строку значений
func (w *Workbook) WriteRow(values []interface{}) error {
	if w.sheet == "" {
		return errNoSheet
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return fmt.Errorf("xlsxexport: cell name: %w", err)
		}
		if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
			return fmt.Errorf("xlsxexport: set %s: %w", cell, err)
		}
	}
	w.currentRow++
	return nil
}

// WriteTo пишет книгу в формате xlsx
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

// Close освобождает ресурсы книги
func (w *Workbook) Close() error {
	return w.file.Close()
}
