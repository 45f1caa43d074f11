package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (id, name, category, price, stock, unit, weight_kg, image) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Category, p.Price, p.Stock, p.Unit, p.WeightKg, p.Image)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return models.Product{}, ErrDuplicateProduct
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, category, price, stock, unit, weight_kg, image FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Unit, &p.WeightKg, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT id, name, category, price, stock, unit, weight_kg, image FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Unit, &p.WeightKg, &p.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// AdjustStock applies delta to the product's stock, flooring at zero.
func (r *PostgresProductRepository) AdjustStock(id string, delta int) (models.Product, error) {
	query := `
		UPDATE products
		SET stock = GREATEST(0, stock + $1)
		WHERE id = $2
		RETURNING id, name, category, price, stock, unit, weight_kg, image
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, delta, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Unit, &p.WeightKg, &p.Image)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
