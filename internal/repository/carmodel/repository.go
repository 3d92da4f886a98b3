package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/internal/repository/pg"
	"github.com/Leonardostavares/Catalogo-Carro/platform/db/txmanager"
)

const table = "car_models"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCarModelRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) db(ctx context.Context) txmanager.Querier {
	return txmanager.QuerierFrom(ctx, r.pool)
}

func (r *repository) selectJoined() sq.SelectBuilder {
	return r.sb.
		Select("m.id", "m.brand_id", "b.name", "m.name", "m.reference_price", "m.created_at", "m.updated_at").
		From(table + " m").
		Join("brands b ON b.id = m.brand_id")
}

func (r *repository) List(ctx context.Context) ([]model.CarModel, error) {
	return r.many(ctx, r.selectJoined().OrderBy("m.id"))
}

func (r *repository) ListByBrand(ctx context.Context, brandID int64) ([]model.CarModel, error) {
	return r.many(ctx, r.selectJoined().Where(sq.Eq{"m.brand_id": brandID}).OrderBy("m.id"))
}

// SearchByName matches a case-insensitive substring of the model name.
func (r *repository) SearchByName(ctx context.Context, fragment string) ([]model.CarModel, error) {
	return r.many(ctx, r.selectJoined().Where(sq.ILike{"m.name": pg.Contains(fragment)}).OrderBy("m.id"))
}

func (r *repository) ModelByID(ctx context.Context, id int64) (model.CarModel, error) {
	return r.one(ctx, r.selectJoined().Where(sq.Eq{"m.id": id}))
}

func (r *repository) ModelByBrandAndName(ctx context.Context, brandID int64, name string) (model.CarModel, error) {
	return r.one(ctx, r.selectJoined().Where(sq.Eq{"m.brand_id": brandID, "m.name": name}))
}

func (r *repository) Create(ctx context.Context, params model.CarModelParams) (model.CarModel, error) {
	q := r.sb.
		Insert(table).
		Columns("brand_id", "name", "reference_price").
		Values(params.BrandID, params.Name, params.ReferencePrice).
		Suffix("RETURNING id")

	id, err := r.returningID(ctx, q)
	if err != nil {
		return model.CarModel{}, translateWriteErr(err)
	}

	return r.ModelByID(ctx, id)
}

// CreateIfAbsent inserts a model without reference price unless the
// (brand, name) pair is taken, in which case it returns ErrModelConflict.
func (r *repository) CreateIfAbsent(ctx context.Context, brandID int64, name string) (model.CarModel, error) {
	q := r.sb.
		Insert(table).
		Columns("brand_id", "name").
		Values(brandID, name).
		Suffix("ON CONFLICT (brand_id, name) DO NOTHING RETURNING id")

	id, err := r.returningID(ctx, q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CarModel{}, model.ErrModelConflict
		}
		return model.CarModel{}, translateWriteErr(err)
	}

	return r.ModelByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, params model.CarModelParams) (model.CarModel, error) {
	q := r.sb.
		Update(table).
		Set("brand_id", params.BrandID).
		Set("name", params.Name).
		Set("reference_price", params.ReferencePrice).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id")

	if _, err := r.returningID(ctx, q); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CarModel{}, model.ErrModelNotFound
		}
		return model.CarModel{}, translateWriteErr(err)
	}

	return r.ModelByID(ctx, id)
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
		return model.ErrModelNotFound
	}

	return nil
}

func (r *repository) HasCars(ctx context.Context, id int64) (bool, error) {
	sqlStr, args, err := r.sb.
		Select("1").
		From("cars").
		Where(sq.Eq{"model_id": id}).
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

func (r *repository) returningID(ctx context.Context, q sq.Sqlizer) (int64, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) one(ctx context.Context, q sq.SelectBuilder) (model.CarModel, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.CarModel{}, err
	}

	m, err := scanModel(r.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CarModel{}, model.ErrModelNotFound
		}
		return model.CarModel{}, err
	}

	return m, nil
}

func (r *repository) many(ctx context.Context, q sq.SelectBuilder) ([]model.CarModel, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]model.CarModel, 0)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	return models, rows.Err()
}

func scanModel(row pgx.Row) (model.CarModel, error) {
	var (
		m     model.CarModel
		price decimal.NullDecimal
	)

	err := row.Scan(&m.ID, &m.BrandID, &m.BrandName, &m.Name, &price, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.CarModel{}, err
	}
	if price.Valid {
		m.ReferencePrice = &price.Decimal
	}

	return m, nil
}

func translateWriteErr(err error) error {
	switch {
	case pg.IsUniqueViolation(err):
		return model.ErrModelConflict
	case pg.IsForeignKeyViolation(err):
		return model.ErrBrandNotFound
	default:
		return err
	}
}
