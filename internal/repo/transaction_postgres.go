package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

// Append inserts a new ledger entry. The table has no UPDATE or DELETE path.
func (r *PostgresTransactionRepository) Append(t models.Transaction) error {
	query := `INSERT INTO transactions (id, product_id, product_name, type, quantity, total_price, timestamp) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, t.ID, t.ProductID, t.ProductName, t.Type, t.Quantity, t.TotalPrice, t.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PostgresTransactionRepository) GetAll() ([]models.Transaction, error) {
	query := `SELECT id, product_id, product_name, type, quantity, total_price, timestamp FROM transactions ORDER BY timestamp`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// Filter returns matching entries plus the total match count before pagination.
func (r *PostgresTransactionRepository) Filter(tf TransactionFilter) ([]models.Transaction, int, error) {
	whereClause, args := buildTransactionWhere(tf)

	total, err := r.getTotal(whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if tf.Offset != nil && *tf.Offset >= total {
		return []models.Transaction{}, total, nil
	}

	query := fmt.Sprintf("SELECT id, product_id, product_name, type, quantity, total_price, timestamp FROM transactions %s ORDER BY timestamp", whereClause)
	argIndex := len(args) + 1

	// A nil limit means no limit, so exports see the whole ledger. The
	// in-memory implementation behaves the same way.
	if tf.Limit != nil && *tf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *tf.Limit)
		argIndex++
	}

	if tf.Offset != nil && *tf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *tf.Offset)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func buildTransactionWhere(tf TransactionFilter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIndex := 1

	if tf.ProductID != "" {
		whereClause += fmt.Sprintf(" AND product_id = $%d", argIndex)
		args = append(args, tf.ProductID)
		argIndex++
	}
	if tf.Type != "" {
		whereClause += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, tf.Type)
		argIndex++
	}
	if tf.Since != nil {
		whereClause += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *tf.Since)
		argIndex++
	}
	if tf.Until != nil {
		whereClause += fmt.Sprintf(" AND timestamp <= $%d", argIndex)
		args = append(args, *tf.Until)
	}

	return whereClause, args
}

func (r *PostgresTransactionRepository) getTotal(whereClause string, args []any) (int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", whereClause)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.ProductName, &t.Type, &t.Quantity, &t.TotalPrice, &t.Timestamp); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
