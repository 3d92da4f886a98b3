package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/internal/repository/pg"
	"github.com/Leonardostavares/Catalogo-Carro/platform/db/txmanager"
)

const table = "brands"

var columns = []string{"id", "name", "created_at", "updated_at"}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewBrandRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) db(ctx context.Context) txmanager.Querier {
	return txmanager.QuerierFrom(ctx, r.pool)
}

func (r *repository) List(ctx context.Context) ([]model.Brand, error) {
	sqlStr, args, err := r.sb.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]model.Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (r *repository) BrandByID(ctx context.Context, id int64) (model.Brand, error) {
	return r.one(ctx, r.sb.Select(columns...).From(table).Where(sq.Eq{"id": id}))
}

func (r *repository) BrandByName(ctx context.Context, name string) (model.Brand, error) {
	return r.one(ctx, r.sb.Select(columns...).From(table).Where(sq.Eq{"name": name}))
}

func (r *repository) Create(ctx context.Context, params model.BrandParams) (model.Brand, error) {
	q := r.sb.
		Insert(table).
		Columns("name").
		Values(params.Name).
		Suffix("RETURNING id, name, created_at, updated_at")

	b, err := r.one(ctx, q)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return model.Brand{}, model.ErrBrandConflict
		}
		return model.Brand{}, err
	}

	return b, nil
}

// CreateIfAbsent inserts the brand unless the name is taken, in which case
// it returns ErrBrandConflict without aborting the surrounding transaction.
func (r *repository) CreateIfAbsent(ctx context.Context, name string) (model.Brand, error) {
	q := r.sb.
		Insert(table).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id, name, created_at, updated_at")

	b, err := r.one(ctx, q)
	if err != nil {
		if errors.Is(err, model.ErrBrandNotFound) {
			return model.Brand{}, model.ErrBrandConflict
		}
		return model.Brand{}, err
	}

	return b, nil
}

func (r *repository) Update(ctx context.Context, id int64, params model.BrandParams) (model.Brand, error) {
	q := r.sb.
		Update(table).
		Set("name", params.Name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at, updated_at")

	b, err := r.one(ctx, q)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return model.Brand{}, model.ErrBrandConflict
		}
		return model.Brand{}, err
	}

	return b, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return model.ErrHasDependents
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrBrandNotFound
	}

	return nil
}

func (r *repository) HasModels(ctx context.Context, id int64) (bool, error) {
	sqlStr, args, err := r.sb.
		Select("1").
		From("car_models").
		Where(sq.Eq{"brand_id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) one(ctx context.Context, q sq.Sqlizer) (model.Brand, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.Brand{}, err
	}

	b, err := scanBrand(r.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Brand{}, model.ErrBrandNotFound
		}
		return model.Brand{}, err
	}

	return b, nil
}

func scanBrand(row pgx.Row) (model.Brand, error) {
	var b model.Brand
	err := row.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
