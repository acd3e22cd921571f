package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportService renders record listings as downloadable files. The
// caller supplies the header row and pre-built data rows, so the same
// service covers every record entity.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// RecordsCSV renders rows as CSV
func (s *ExportService) RecordsCSV(entity string, headers []string, rows [][]interface{}) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write(headers)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		_ = writer.Write(cells)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(entity, "csv"), nil
}

// RecordsXLSX renders rows as an Excel workbook
func (s *ExportService) RecordsXLSX(entity string, headers []string, rows [][]interface{}) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Registros"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for ri, row := range rows {
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(entity, "xlsx"), nil
}

func exportFilename(entity, ext string) string {
	return fmt.Sprintf("%s_%s.%s", strings.ToLower(entity), time.Now().Format("2006-01-02"), ext)
}
