package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"brandtracker-api/internal/mention"
	"brandtracker-api/internal/mention/repository"
	"brandtracker-api/internal/model"
	pkgPostgre "brandtracker-api/pkg/postgre"

	"github.com/lib/pq"
)

// recentHardCap bounds window queries issued without an explicit limit.
const recentHardCap = 10000

const mentionColumns = `id, brand_id, source, type, text, url, title, author,
	sentiment, sentiment_score, topic, keywords, reach,
	eng_likes, eng_shares, eng_comments, eng_replies,
	metadata, published_at, collected_at, content_hash, created_at`

func scanMention(row interface{ Scan(...any) error }) (model.Mention, error) {
	var m model.Mention
	var keywords pq.StringArray
	var metadata []byte

	err := row.Scan(
		&m.ID, &m.BrandID, &m.Source, &m.Type, &m.Text, &m.URL, &m.Title, &m.Author,
		&m.Sentiment, &m.SentimentScore, &m.Topic, &keywords, &m.Reach,
		&m.Engagement.Likes, &m.Engagement.Shares, &m.Engagement.Comments, &m.Engagement.Replies,
		&metadata, &m.PublishedAt, &m.CollectedAt, &m.ContentHash, &m.CreatedAt,
	)
	if err != nil {
		return model.Mention{}, err
	}

	m.Keywords = keywords
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &m.Metadata); err != nil {
			return model.Mention{}, err
		}
	}
	return m, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Mention, error) {
	m := opts.Mention
	if m.ID == "" {
		m.ID = pkgPostgre.NewUUID()
	}
	m.CreatedAt = r.clock()

	metadata := []byte("{}")
	if m.Metadata != nil {
		var err error
		if metadata, err = json.Marshal(m.Metadata); err != nil {
			r.l.Errorf(ctx, "internal.mention.repository.postgres.Create.Marshal: %v", err)
			return model.Mention{}, err
		}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mentions (`+mentionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		m.ID, m.BrandID, m.Source, m.Type, m.Text, m.URL, m.Title, m.Author,
		m.Sentiment, m.SentimentScore, m.Topic, pq.Array(m.Keywords), m.Reach,
		m.Engagement.Likes, m.Engagement.Shares, m.Engagement.Comments, m.Engagement.Replies,
		metadata, m.PublishedAt, m.CollectedAt, m.ContentHash, m.CreatedAt,
	)
	if err != nil {
		if pkgPostgre.IsUniqueViolation(err) {
			return model.Mention{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Create.Exec: %v", err)
		return model.Mention{}, err
	}

	return m, nil
}

func (r *implRepository) ExistsByHash(ctx context.Context, brandID, hash string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM mentions WHERE brand_id = $1 AND content_hash = $2)`,
		brandID, hash,
	).Scan(&exists)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.ExistsByHash.Scan: %v", err)
		return false, err
	}
	return exists, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Mention, int64, error) {
	where, args := buildFilter(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM mentions`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.List.Count: %v", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT `+mentionColumns+` FROM mentions%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, opts.Limit, opts.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.List.Query: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	mentions, err := collect(rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.List.Scan: %v", err)
		return nil, 0, err
	}
	return mentions, total, nil
}

func (r *implRepository) ListRecent(ctx context.Context, brandID string, since time.Time, limit int) ([]model.Mention, error) {
	if limit <= 0 {
		limit = recentHardCap
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+mentionColumns+` FROM mentions
		 WHERE brand_id = $1 AND created_at >= $2
		 ORDER BY created_at DESC LIMIT $3`,
		brandID, since, limit,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.ListRecent.Query: %v", err)
		return nil, err
	}
	defer rows.Close()

	mentions, err := collect(rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.ListRecent.Scan: %v", err)
		return nil, err
	}
	return mentions, nil
}

func (r *implRepository) UpdateTopic(ctx context.Context, ids []string, topic string, keywords []string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE mentions SET topic = $1, keywords = $2 WHERE id = ANY($3)`,
		topic, pq.Array(keywords), pq.Array(ids),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.UpdateTopic.Exec: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Stats(ctx context.Context, brandID string) (mention.StatsOutput, error) {
	var out mention.StatsOutput

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM mentions WHERE brand_id = $1`, brandID).Scan(&out.Total); err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Stats.Count: %v", err)
		return mention.StatsOutput{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT sentiment, COUNT(*), AVG(sentiment_score)
		 FROM mentions WHERE brand_id = $1
		 GROUP BY sentiment`, brandID)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Stats.Sentiment: %v", err)
		return mention.StatsOutput{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var s mention.SentimentStat
		if err := rows.Scan(&s.Sentiment, &s.Count, &s.AvgScore); err != nil {
			return mention.StatsOutput{}, err
		}
		out.Sentiment = append(out.Sentiment, s)
	}
	if err := rows.Err(); err != nil {
		return mention.StatsOutput{}, err
	}

	srcRows, err := r.db.QueryContext(ctx,
		`SELECT source, COUNT(*)
		 FROM mentions WHERE brand_id = $1
		 GROUP BY source`, brandID)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Stats.Sources: %v", err)
		return mention.StatsOutput{}, err
	}
	defer srcRows.Close()

	for srcRows.Next() {
		var s mention.SourceStat
		if err := srcRows.Scan(&s.Source, &s.Count); err != nil {
			return mention.StatsOutput{}, err
		}
		out.Sources = append(out.Sources, s)
	}
	return out, srcRows.Err()
}

func (r *implRepository) Trends(ctx context.Context, brandID string, since time.Time) ([]mention.TrendBucket, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT to_char(date_trunc('hour', created_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD HH24:00'),
		        sentiment, COUNT(*)
		 FROM mentions
		 WHERE brand_id = $1 AND created_at >= $2
		 GROUP BY 1, 2
		 ORDER BY 1`, brandID, since)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Trends.Query: %v", err)
		return nil, err
	}
	defer rows.Close()

	var buckets []mention.TrendBucket
	for rows.Next() {
		var b mention.TrendBucket
		if err := rows.Scan(&b.Hour, &b.Sentiment, &b.Count); err != nil {
			r.l.Errorf(ctx, "internal.mention.repository.postgres.Trends.Scan: %v", err)
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func collect(rows *sql.Rows) ([]model.Mention, error) {
	var mentions []model.Mention
	for rows.Next() {
		m, err := scanMention(rows)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, m)
	}
	return mentions, rows.Err()
}

func buildFilter(opts repository.ListOptions) (string, []any) {
	var conds []string
	var args []any

	add := func(col string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if opts.BrandID != "" {
		add("brand_id", opts.BrandID)
	}
	if opts.Source != "" {
		add("source", opts.Source)
	}
	if opts.Sentiment != "" {
		add("sentiment", opts.Sentiment)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
