package postgres

import (
	"context"
	"database/sql"

	"brandtracker-api/internal/brand/repository"
	"brandtracker-api/internal/model"
	pkgPostgre "brandtracker-api/pkg/postgre"

	"github.com/lib/pq"
)

const brandColumns = `id, name, description, logo_url, keywords, is_active,
	src_newsapi, src_reddit, src_rss, src_youtube, src_google_alerts, src_wikimedia,
	google_alert_feeds, spike_threshold, collect_interval_minutes, created_at, updated_at`

func scanBrand(row interface{ Scan(...any) error }) (model.Brand, error) {
	var b model.Brand
	var keywords, feeds pq.StringArray

	err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.LogoURL, &keywords, &b.IsActive,
		&b.Sources.NewsAPI, &b.Sources.Reddit, &b.Sources.RSS, &b.Sources.YouTube,
		&b.Sources.GoogleAlerts, &b.Sources.Wikimedia,
		&feeds, &b.Settings.SpikeThreshold, &b.Settings.CollectIntervalMinutes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return model.Brand{}, err
	}

	b.Keywords = keywords
	b.GoogleAlertFeeds = feeds
	return b, nil
}

func (r *implRepository) list(ctx context.Context, query string, args ...any) ([]model.Brand, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []model.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *implRepository) List(ctx context.Context) ([]model.Brand, error) {
	brands, err := r.list(ctx,
		`SELECT `+brandColumns+` FROM brands ORDER BY created_at DESC`)
	if err != nil {
		r.l.Errorf(ctx, "internal.brand.repository.postgres.List.Query: %v", err)
		return nil, err
	}
	return brands, nil
}

func (r *implRepository) ListActive(ctx context.Context) ([]model.Brand, error) {
	brands, err := r.list(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE is_active ORDER BY created_at`)
	if err != nil {
		r.l.Errorf(ctx, "internal.brand.repository.postgres.ListActive.Query: %v", err)
		return nil, err
	}
	return brands, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Brand, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return model.Brand{}, repository.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE id = $1`, id)

	b, err := scanBrand(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Brand{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.brand.repository.postgres.Detail.Scan: %v", err)
		return model.Brand{}, err
	}
	return b, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Brand, error) {
	b := opts.Brand
	if b.ID == "" {
		b.ID = pkgPostgre.NewUUID()
	}
	now := r.clock()
	b.CreatedAt, b.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO brands (`+brandColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		b.ID, b.Name, b.Description, b.LogoURL, pq.Array(b.Keywords), b.IsActive,
		b.Sources.NewsAPI, b.Sources.Reddit, b.Sources.RSS, b.Sources.YouTube,
		b.Sources.GoogleAlerts, b.Sources.Wikimedia,
		pq.Array(b.GoogleAlertFeeds), b.Settings.SpikeThreshold, b.Settings.CollectIntervalMinutes,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pkgPostgre.IsUniqueViolation(err) {
			return model.Brand{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.brand.repository.postgres.Create.Exec: %v", err)
		return model.Brand{}, err
	}

	return b, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Brand, error) {
	b := opts.Brand
	if err := pkgPostgre.IsUUID(b.ID); err != nil {
		return model.Brand{}, repository.ErrNotFound
	}
	b.UpdatedAt = r.clock()

	res, err := r.db.ExecContext(ctx,
		`UPDATE brands SET
			name = $2, description = $3, logo_url = $4, keywords = $5, is_active = $6,
			src_newsapi = $7, src_reddit = $8, src_rss = $9, src_youtube = $10,
			src_google_alerts = $11, src_wikimedia = $12,
			google_alert_feeds = $13, spike_threshold = $14, collect_interval_minutes = $15,
			updated_at = $16
		 WHERE id = $1`,
		b.ID, b.Name, b.Description, b.LogoURL, pq.Array(b.Keywords), b.IsActive,
		b.Sources.NewsAPI, b.Sources.Reddit, b.Sources.RSS, b.Sources.YouTube,
		b.Sources.GoogleAlerts, b.Sources.Wikimedia,
		pq.Array(b.GoogleAlertFeeds), b.Settings.SpikeThreshold, b.Settings.CollectIntervalMinutes,
		b.UpdatedAt,
	)
	if err != nil {
		if pkgPostgre.IsUniqueViolation(err) {
			return model.Brand{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.brand.repository.postgres.Update.Exec: %v", err)
		return model.Brand{}, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.brand.repository.postgres.Update.RowsAffected: %v", err)
		return model.Brand{}, err
	}
	if rows == 0 {
		return model.Brand{}, repository.ErrNotFound
	}

	return r.Detail(ctx, b.ID)
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.brand.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.brand.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
