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

const table = "cars"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCarRepository(pool *pgxpool.Pool) *repository {
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
		Select(
			"c.id", "c.model_id", "c.year", "c.fuel", "c.doors", "c.color", "c.value",
			"c.registered_at", "c.created_at", "c.updated_at",
			"m.name", "b.id", "b.name",
		).
		From(table + " c").
		Join("car_models m ON m.id = c.model_id").
		Join("brands b ON b.id = m.brand_id")
}

func (r *repository) Create(ctx context.Context, car model.Car) (int64, error) {
	q := r.sb.
		Insert(table).
		Columns("model_id", "year", "fuel", "doors", "color", "value", "registered_at").
		Values(car.ModelID, car.Year, car.Fuel, car.Doors, car.Color, car.Value, car.RegisteredAt).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if pg.IsForeignKeyViolation(err) {
			return 0, model.ErrModelNotFound
		}
		return 0, err
	}

	return id, nil
}

func (r *repository) CarByID(ctx context.Context, id int64) (model.CarView, error) {
	sqlStr, args, err := r.selectJoined().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return model.CarView{}, err
	}

	car, err := scanCar(r.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CarView{}, model.ErrCarNotFound
		}
		return model.CarView{}, err
	}

	return car, nil
}

func (r *repository) List(ctx context.Context, filter model.CarsFilter) ([]model.CarView, error) {
	q := r.selectJoined().OrderBy("c.id")

	if filter.ModelID != nil {
		q = q.Where(sq.Eq{"c.model_id": *filter.ModelID})
	}
	if filter.BrandID != nil {
		q = q.Where(sq.Eq{"b.id": *filter.BrandID})
	}
	if filter.Year != nil {
		q = q.Where(sq.Eq{"c.year": *filter.Year})
	}
	if filter.Fuel != nil {
		q = q.Where(sq.Eq{"c.fuel": *filter.Fuel})
	}
	if filter.Color != nil {
		q = q.Where(sq.Eq{"c.color": *filter.Color})
	}
	if filter.MinValue != nil {
		q = q.Where(sq.GtOrEq{"c.value": *filter.MinValue})
	}
	if filter.MaxValue != nil {
		q = q.Where(sq.LtOrEq{"c.value": *filter.MaxValue})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]model.CarView, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	return cars, rows.Err()
}

func (r *repository) Update(ctx context.Context, car model.Car) error {
	q := r.sb.
		Update(table).
		SetMap(sq.Eq{
			"model_id":   car.ModelID,
			"year":       car.Year,
			"fuel":       car.Fuel,
			"doors":      car.Doors,
			"color":      car.Color,
			"value":      car.Value,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": car.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return model.ErrModelNotFound
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrCarNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrCarNotFound
	}

	return nil
}

func scanCar(row pgx.Row) (model.CarView, error) {
	var c model.CarView
	err := row.Scan(
		&c.ID,
		&c.ModelID,
		&c.Year,
		&c.Fuel,
		&c.Doors,
		&c.Color,
		&c.Value,
		&c.RegisteredAt,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.ModelName,
		&c.BrandID,
		&c.BrandName,
	)
	return c, err
}
