package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"brandtracker-api/internal/alert/repository"
	"brandtracker-api/internal/model"
	pkgPostgre "brandtracker-api/pkg/postgre"
)

const defaultListLimit = 50

const alertColumns = `id, brand_id, type, severity, title, message, metadata,
	is_read, triggered_at, created_at`

func scanAlert(row interface{ Scan(...any) error }) (model.Alert, error) {
	var a model.Alert
	var metadata []byte

	err := row.Scan(
		&a.ID, &a.BrandID, &a.Type, &a.Severity, &a.Title, &a.Message, &metadata,
		&a.IsRead, &a.TriggeredAt, &a.CreatedAt,
	)
	if err != nil {
		return model.Alert{}, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return model.Alert{}, err
		}
	}
	return a, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Alert, error) {
	a := opts.Alert
	if a.ID == "" {
		a.ID = pkgPostgre.NewUUID()
	}
	a.CreatedAt = r.clock()
	if a.TriggeredAt.IsZero() {
		a.TriggeredAt = a.CreatedAt
	}

	metadata := []byte("{}")
	if a.Metadata != nil {
		var err error
		if metadata, err = json.Marshal(a.Metadata); err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.Marshal: %v", err)
			return model.Alert{}, err
		}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts (`+alertColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.BrandID, a.Type, a.Severity, a.Title, a.Message, metadata,
		a.IsRead, a.TriggeredAt, a.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.Exec: %v", err)
		return model.Alert{}, err
	}

	return a, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Alert, error) {
	var conds []string
	var args []any

	if opts.BrandID != "" {
		args = append(args, opts.BrandID)
		conds = append(conds, fmt.Sprintf("brand_id = $%d", len(args)))
	}
	if opts.IsRead != nil {
		args = append(args, *opts.IsRead)
		conds = append(conds, fmt.Sprintf("is_read = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT `+alertColumns+` FROM alerts%s ORDER BY created_at DESC LIMIT $%d`,
			where, len(args)),
		args...,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.List.Query: %v", err)
		return nil, err
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.List.Scan: %v", err)
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *implRepository) MarkRead(ctx context.Context, id string) (model.Alert, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return model.Alert{}, repository.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`UPDATE alerts SET is_read = TRUE WHERE id = $1 RETURNING `+alertColumns, id)

	a, err := scanAlert(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.MarkRead.Scan: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
