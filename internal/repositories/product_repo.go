package repositories

import (
	"context"

	"crackershop/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (int64, error)
	Update(ctx context.Context, product *models.Product) (bool, error)
	List(ctx context.Context) ([]*models.Product, error)
	ListImagePaths(ctx context.Context) ([]string, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) (int64, error) {
	query := `
		INSERT INTO products (name, mkt_price, our_price, img, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, product.Name, product.MktPrice, product.OurPrice, product.Img, product.CategoryID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites all mutable fields by id and reports whether a row matched.
func (r *productRepo) Update(ctx context.Context, product *models.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $1, mkt_price = $2, our_price = $3, img = $4, category_id = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, product.Name, product.MktPrice, product.OurPrice, product.Img, product.CategoryID, product.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, name, mkt_price, our_price, img, category_id
		FROM products
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.MktPrice, &product.OurPrice, &product.Img, &product.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// ListImagePaths returns the stored image paths of every product that has one.
// Used by the uploads sweeper to find files nothing references.
func (r *productRepo) ListImagePaths(ctx context.Context) ([]string, error) {
	query := `SELECT img FROM products WHERE img IS NOT NULL`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
