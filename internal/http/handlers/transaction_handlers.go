package handlers

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	models "github.com/adisantoso/toko-bangunan/internal/models"
	repo "github.com/adisantoso/toko-bangunan/internal/repo"
)

// GetTransactionsHandler godoc
// @Summary List ledger transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param product_id query string false "Filter by product"
// @Param type query string false "Filter by type (IN or OUT)"
// @Param since query string false "Filter transactions from this timestamp (RFC3339)"
// @Param until query string false "Filter transactions until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} TransactionsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /transactions [get]
func GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	tf, ok := parseTransactionFilter(w, r)
	if !ok {
		return
	}

	transactions, total, err := transactionRepo.Filter(tf)
	if err != nil {
		log.Printf("could not retrieve transactions: %v", err)
		http.Error(w, "could not retrieve transactions", http.StatusInternalServerError)
		return
	}

	response := TransactionsSearchResult{
		Data: make([]TransactionResponse, len(transactions)),
		Meta: Meta{TotalCount: total},
	}
	for i, t := range transactions {
		response.Data[i] = toTransactionResponse(t)
	}
	writeJSON(w, http.StatusOK, response)
}

// ExportTransactionsHandler godoc
// @Summary Export ledger transactions
// @Tags transactions
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Param product_id query string false "Filter by product"
// @Param type query string false "Filter by type (IN or OUT)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /transactions/export [get]
func ExportTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	tf, ok := parseTransactionFilter(w, r)
	if !ok {
		return
	}
	tf.Limit = nil
	tf.Offset = nil

	transactions, _, err := transactionRepo.Filter(tf)
	if err != nil {
		http.Error(w, "could not retrieve transactions", http.StatusInternalServerError)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.json"`)
		json.NewEncoder(w).Encode(transactions)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "product_name", "type", "quantity", "total_price", "timestamp"})
		for _, t := range transactions {
			_ = csvWriter.Write([]string{
				t.ID,
				t.ProductID,
				t.ProductName,
				string(t.Type),
				strconv.Itoa(t.Quantity),
				strconv.FormatInt(t.TotalPrice, 10),
				t.Timestamp.Format(timeFormat),
			})
		}
		csvWriter.Flush()
	}
}

func parseTransactionFilter(w http.ResponseWriter, r *http.Request) (repo.TransactionFilter, bool) {
	tf := repo.TransactionFilter{
		ProductID: r.URL.Query().Get("product_id"),
	}

	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		if typeStr != string(models.TransactionIn) && typeStr != string(models.TransactionOut) {
			http.Error(w, "type must be IN or OUT", http.StatusBadRequest)
			return tf, false
		}
		tf.Type = models.TransactionType(typeStr)
	}

	sinceStr := r.URL.Query().Get("since")
	untilStr := r.URL.Query().Get("until")

	// Reverse the substitution from + for space in the date parameters,
	// otherwise time.Parse fails. URL query parameters replace + with a space:
	// 2025-07-03T17:44:03+02:00 becomes 2025-07-03T17:44:03 02:00 on Query().Get()
	if len(sinceStr) == len(time.RFC3339) && sinceStr[len(sinceStr)-6] == ' ' {
		sinceStr = sinceStr[:len(sinceStr)-6] + "+" + sinceStr[len(sinceStr)-5:]
	}
	if len(untilStr) == len(time.RFC3339) && untilStr[len(untilStr)-6] == ' ' {
		untilStr = untilStr[:len(untilStr)-6] + "+" + untilStr[len(untilStr)-5:]
	}

	if sinceStr != "" {
		ts, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			log.Printf("could not parse since date %s: %v", sinceStr, err)
			http.Error(w, "invalid since date format", http.StatusBadRequest)
			return tf, false
		}
		tf.Since = &ts
	}
	if untilStr != "" {
		ts, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			log.Printf("could not parse until date %s: %v", untilStr, err)
			http.Error(w, "invalid until date format", http.StatusBadRequest)
			return tf, false
		}
		tf.Until = &ts
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "invalid limit format", http.StatusBadRequest)
			return tf, false
		}
		if v <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return tf, false
		}
		tf.Limit = &v
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil {
			http.Error(w, "invalid offset format", http.StatusBadRequest)
			return tf, false
		}
		if v < 0 {
			http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
			return tf, false
		}
		tf.Offset = &v
	}

	return tf, true
}
