package supplierservice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"gosupply/internal/domain"
	apperror "gosupply/internal/errors"
)

// Planilha de fornecedores. A importação lê o mesmo layout da exportação e ignora a coluna ID.
const (
	SheetName  = "Suppliers"
	exportPage = domain.MaxSupplierLimit
)

var sheetHeader = []interface{}{"ID", "First Name", "Last Name", "Phone", "Email", "Address"}

// ImportResult resume o processamento de uma planilha importada.
type ImportResult struct {
	TotalRows     int               `json:"totalRows"`
	SuccessCount  int               `json:"successCount"`
	ErrorCount    int               `json:"errorCount"`
	ErrorMessages []string          `json:"errorMessages"`
	Items         []domain.Supplier `json:"items"`
}

// Export escreve todos os fornecedores (id decrescente) numa planilha xlsx.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return 0, apperror.NewInternalError("failed to prepare spreadsheet", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &sheetHeader); err != nil {
		return 0, apperror.NewInternalError("failed to write spreadsheet header", err)
	}

	row := 2
	filter := domain.SupplierFilter{Limit: exportPage}
	for {
		items, err := s.repo.FindPage(ctx, filter)
		if err != nil {
			return 0, err
		}
		for _, sup := range items {
			email := ""
			if sup.Email != nil {
				email = *sup.Email
			}
			cells := []interface{}{sup.ID, sup.FirstName, sup.LastName, sup.Phone, email, sup.Address}
			if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
				return 0, apperror.NewInternalError("failed to write spreadsheet row", err)
			}
			row++
		}

		page := domain.NewSupplierPage(items, filter.Limit)
		if !page.HasMore {
			break
		}
		filter.LastID = page.LastID
	}

	if err := f.Write(w); err != nil {
		return 0, apperror.NewInternalError("failed to write spreadsheet", err)
	}

	exported := row - 2
	s.logger.Info("Fornecedores exportados", map[string]interface{}{"count": exported})
	return exported, nil
}

// Import lê a primeira aba da planilha e cria, numa única transação, os fornecedores
// das linhas válidas. Linhas inválidas são reportadas em ErrorMessages e não abortam a importação.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, apperror.NewValidationError("failed to read Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, apperror.NewValidationError("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, apperror.NewInternalError("failed to read rows", err)
	}
	if len(rows) < 2 {
		return ImportResult{}, apperror.NewValidationError("Excel file must contain header and at least one data row")
	}

	result := ImportResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
		Items:         []domain.Supplier{},
	}

	var valid []domain.Supplier
	for i, row := range rows[1:] {
		rowNum := i + 2

		if isBlank(row) {
			result.TotalRows--
			continue
		}

		input := domain.SupplierInput{
			FirstName: cell(row, 1),
			LastName:  cell(row, 2),
			Phone:     cell(row, 3),
			Email:     cell(row, 4),
			Address:   cell(row, 5),
		}.Normalize()
		if err := s.validator.Struct(input); err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		valid = append(valid, input.ToSupplier(0))
	}

	if len(valid) > 0 {
		created, err := s.repo.CreateMany(ctx, valid)
		if err != nil {
			return ImportResult{}, err
		}
		result.Items = created
		result.SuccessCount = len(created)
	}

	s.logger.Info("Importação de fornecedores concluída", map[string]interface{}{
		"total":   result.TotalRows,
		"success": result.SuccessCount,
		"errors":  result.ErrorCount,
	})
	return result, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
