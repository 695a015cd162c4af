package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	models "github.com/kozlekmarchewkowy/warehouse-manager/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, quantity, price, category_id) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Quantity, p.Price, p.CategoryID).Scan(&p.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return models.Product{}, ErrCategoryMissing
		}
		return models.Product{}, err
	}
	return p, nil
}

// GetAllFlattened returns every product newest-first, annotated with its
// category name. A left join keeps products whose category row is gone; those
// get the missing-category label.
func (r *PostgresProductRepository) GetAllFlattened() ([]models.FlatProduct, error) {
	query := `
		SELECT p.id, p.name, c.name, p.quantity, p.price
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.FlatProduct
	for rows.Next() {
		var p models.FlatProduct
		var categoryName sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &categoryName, &p.Quantity, &p.Price); err != nil {
			return nil, err
		}
		if categoryName.Valid {
			p.CategoryLabel = categoryName.String
		} else {
			p.CategoryLabel = models.MissingCategoryLabel
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetAllByName() ([]models.Product, error) {
	query := `SELECT id, name, quantity, price, category_id FROM products ORDER BY name`
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
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, quantity, price, category_id FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteMany removes every product whose id is in ids with a single delete.
// Ids not present in the store are skipped; the returned count is the number
// of rows actually removed.
func (r *PostgresProductRepository) DeleteMany(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `DELETE FROM products WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	rowsAffected, _ := res.RowsAffected()
	return int(rowsAffected), nil
}

// DeleteAll removes every product row. Categories are never touched.
func (r *PostgresProductRepository) DeleteAll() (int, error) {
	query := `DELETE FROM products`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	rowsAffected, _ := res.RowsAffected()
	return int(rowsAffected), nil
}
