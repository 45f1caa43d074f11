package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	models "github.com/adisantoso/toko-bangunan/internal/models"
)

type csvRow struct {
	ID       string
	Name     string
	Category string
	Price    int64
	Stock    int
	Unit     string
	WeightKg float64
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"id", "name", "category", "price", "stock", "unit", "weight_kg"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			ID:       record[index["id"]],
			Name:     record[index["name"]],
			Category: record[index["category"]],
			Price:    parseInt64(record[index["price"]]),
			Stock:    parseInt(record[index["stock"]]),
			Unit:     record[index["unit"]],
			WeightKg: parseFloat(record[index["weight_kg"]]),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("missing id")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if !models.ValidCategory(models.Category(r.Category)) {
		return errors.New("invalid category")
	}
	if r.Price < 0 {
		return errors.New("invalid price")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	if r.WeightKg < 0 {
		return errors.New("invalid weight")
	}
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file with columns id,name,category,price,stock,unit,weight_kg"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: err.Error(),
			})
			continue
		}

		product := models.Product{
			ID:       row.ID,
			Name:     row.Name,
			Category: models.Category(row.Category),
			Price:    row.Price,
			Stock:    row.Stock,
			Unit:     row.Unit,
			WeightKg: row.WeightKg,
		}
		if _, err := productRepo.Create(product); err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: err.Error(),
			})
			continue
		}
		result.ImportedProductsCount++
	}

	writeJSON(w, http.StatusOK, result)
}
