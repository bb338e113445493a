package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"attendance-registry/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	ExportFileName = "attendances.xlsx"
	ExportMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet    = "Attendances"
)

// ExportColumns: колонки выгрузки, в порядке таблицы на экране (без id).
var ExportColumns = []string{
	"Attendant", "Subject", "Community", "Municipality", "Phone",
	"Email", "Reference number", "Date", "Reason",
}

func exportRow(r models.Record) []interface{} {
	return []interface{}{
		r.AttendantName, r.SubjectName, r.Community, r.Municipality, r.Phone,
		r.Email, r.ReferenceNumber, r.Date, r.Reason,
	}
}

func buildWorkbook(records []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	header := make([]interface{}, len(ExportColumns))
	for i, c := range ExportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		row := exportRow(r)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteSpreadsheet пишет xlsx со всеми записями в w.
func WriteSpreadsheet(records []models.Record, w io.Writer) error {
	f, err := buildWorkbook(records)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ExportFile сохраняет выгрузку в dir под уникальным именем, чтобы параллельные
// выгрузки не затирали друг друга. Удаляет файл вызывающий.
func ExportFile(records []models.Record, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f, err := buildWorkbook(records)
	if err != nil {
		return "", fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	path := filepath.Join(dir, "attendances-"+uuid.NewString()+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
