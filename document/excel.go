package document

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rcastrogi/advocacia-sub002/models"
)

// SectionsWorkbook builds a back-office spreadsheet listing every section
// and its field schema, one row per section.
func SectionsWorkbook(sections []models.Section) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	headers := []string{"ID", "Name", "Slug", "Order", "Active", "Version", "Fields"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, section := range sections {
		row := i + 2

		fieldNames := make([]string, 0, len(section.FieldsSchema))
		for _, field := range section.FieldsSchema {
			fieldNames = append(fieldNames, fmt.Sprintf("%s (%s)", field.Name, field.Type))
		}

		values := []any{
			section.ID,
			section.Name,
			section.Slug,
			section.Order,
			section.IsActive,
			section.Version,
			strings.Join(fieldNames, ", "),
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

// PetitionsWorkbook builds a spreadsheet of submitted petitions for review.
func PetitionsWorkbook(petitions []models.Petition) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	headers := []string{"ID", "Parent Kind", "Parent ID", "Document Key", "Created At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, petition := range petitions {
		row := i + 2

		values := []any{
			petition.ID,
			petition.Parent.Kind,
			petition.Parent.ID,
			petition.DocumentKey,
			petition.CreatedAt.Format("02/01/2006 15:04"),
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
