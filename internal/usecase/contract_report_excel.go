package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	excelSheetName   = "Contracts"
	excelHeaderRow   = 3
	excelColumnWidth = 20
)

// GenerateExcel renders the report as a single XLSX sheet: the period on the
// first row, the headers on the third and one contract per row after that.
func (u *ContractReportUseCase) GenerateExcel(ctx context.Context, startDate, endDate *time.Time) ([]byte, error) {
	records, err := u.reportRecords(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}
	lastColumn, err := excelize.ColumnNumberToName(len(reportHeaders))
	if err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}

	if err := f.SetCellValue(excelSheetName, "A1", "Period: "+periodText(startDate, endDate)); err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}
	if err := f.SetCellStyle(excelSheetName, "A1", "A1", boldStyle); err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}

	headers := make([]any, len(reportHeaders))
	for i, h := range reportHeaders {
		headers[i] = h
	}
	headerCell := fmt.Sprintf("A%d", excelHeaderRow)
	if err := f.SetSheetRow(excelSheetName, headerCell, &headers); err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}
	if err := f.SetCellStyle(excelSheetName, headerCell, fmt.Sprintf("%s%d", lastColumn, excelHeaderRow), headerStyle); err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}

	if len(records) == 0 {
		if err := f.SetCellValue(excelSheetName, fmt.Sprintf("A%d", excelHeaderRow+1), reportEmptyMessage); err != nil {
			return nil, fmt.Errorf("excel report: %w", err)
		}
	}
	for i, r := range records {
		row := excelRow(r)
		if err := f.SetSheetRow(excelSheetName, fmt.Sprintf("A%d", excelHeaderRow+1+i), &row); err != nil {
			return nil, fmt.Errorf("excel report: %w", err)
		}
	}

	if err := f.SetColWidth(excelSheetName, "A", lastColumn, excelColumnWidth); err != nil {
		return nil, fmt.Errorf("excel report: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel report: %w", err)
	}
	return buf.Bytes(), nil
}

// excelRow keeps the prices numeric so the sheet can sum them.
func excelRow(r reportRecord) []any {
	texts := r.texts()
	row := make([]any, len(texts))
	for i, v := range texts {
		row[i] = v
	}
	row[16] = r.PurchasePrice
	row[17] = r.SalePrice
	return row
}
