package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, title, author, publisher, isbn, classification, category, page_count, price"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	where := ""
	args := []any{}
	argn := 1

	if q.Category != "" {
		where = fmt.Sprintf("WHERE category = $%d", argn)
		args = append(args, q.Category)
		argn++
	}

	var sortCol string
	switch q.Sort {
	case SortByAuthor:
		sortCol = "author"
	case SortByPrice:
		sortCol = "price"
	default:
		sortCol = "title"
	}
	order := "ASC"
	if q.Direction == SortDesc {
		order = "DESC"
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Secondary sort on id keeps pagination stable when many rows share
	// the same sort key.
	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d`,
		bookColumns, where, sortCol, order, argn, argn+1)

	args = append(args, q.PageSize, (q.Page-1)*q.PageSize)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *PostgresRepo) Categories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM books ORDER BY category`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetAll(ctx context.Context) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY id ASC", bookColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE id = $1", bookColumns)

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Publisher, &b.ISBN,
		&b.Classification, &b.Category, &b.PageCount, &b.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, publisher, isbn, classification, category, page_count, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		b.Title, b.Author, b.Publisher, b.ISBN,
		b.Classification, b.Category, b.PageCount, b.Price,
	).Scan(&b.ID)
}

func (r *PostgresRepo) Update(ctx context.Context, b Book) error {
	const query = `
		UPDATE books
		SET title = $2, author = $3, publisher = $4, isbn = $5,
		    classification = $6, category = $7, page_count = $8, price = $9
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		b.ID, b.Title, b.Author, b.Publisher, b.ISBN,
		b.Classification, b.Category, b.PageCount, b.Price,
	)
	if err != nil {
		return err
	}
	// Zero rows means the row vanished between read and write; the
	// caller sees that as not-found.
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Publisher, &b.ISBN,
			&b.Classification, &b.Category, &b.PageCount, &b.Price,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
