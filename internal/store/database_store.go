package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/brevly/internal/config/db"
	"github.com/avc-dev/brevly/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"

	constraintOriginalURL = "links_original_url_key"
	constraintShortURL    = "links_short_url_key"

	// maxTxAttempts число повторов транзакции создания при конфликте сериализации
	maxTxAttempts = 5

	linkColumns   = `id::text, original_url, short_url, access_count, created_at, updated_at`
	reportColumns = `id::text, file_name, public_url, file_size, created_at`
)

// errOriginalURLRace конкурентная вставка того же оригинального URL
var errOriginalURLRace = errors.New("original URL inserted concurrently")

// DatabaseStore реализует Store интерфейс для PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

func scanLink(row pgx.Row) (model.Link, error) {
	var link model.Link
	err := row.Scan(&link.ID, &link.OriginalURL, &link.ShortURL, &link.AccessCount, &link.CreatedAt, &link.UpdatedAt)
	return link, err
}

func scanReport(row pgx.Row) (model.Report, error) {
	var report model.Report
	err := row.Scan(&report.ID, &report.FileName, &report.PublicURL, &report.FileSize, &report.CreatedAt)
	return report, err
}

// CreateOrGetLink в одной serializable транзакции проверяет оригинальный URL,
// затем короткий код и вставляет новую запись.
func (ds *DatabaseStore) CreateOrGetLink(ctx context.Context, link model.Link) (model.Link, bool, error) {
	id, err := uuid.Parse(link.ID)
	if err != nil {
		return model.Link{}, false, fmt.Errorf("invalid link id %q: %w", link.ID, err)
	}

	for attempt := 1; ; attempt++ {
		result, created, err := ds.createOrGetLinkTx(ctx, id, link)
		switch {
		case err == nil:
			return result, created, nil
		case errors.Is(err, errOriginalURLRace):
			existing, err := ds.getLinkBy(ctx, "original_url", link.OriginalURL)
			if err != nil {
				return model.Link{}, false, err
			}
			return existing, false, nil
		case isPgError(err, pgSerializationFailure) && attempt < maxTxAttempts:
			continue
		default:
			return model.Link{}, false, err
		}
	}
}

func (ds *DatabaseStore) createOrGetLinkTx(ctx context.Context, id uuid.UUID, link model.Link) (model.Link, bool, error) {
	tx, err := ds.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return model.Link{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	existing, err := scanLink(tx.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE original_url = $1`, link.OriginalURL))
	switch {
	case err == nil:
		if err := tx.Commit(ctx); err != nil {
			return model.Link{}, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return existing, false, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return model.Link{}, false, fmt.Errorf("failed to check original URL: %w", err)
	}

	var taken bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM links WHERE short_url = $1)`, link.ShortURL).Scan(&taken)
	if err != nil {
		return model.Link{}, false, fmt.Errorf("failed to check short URL: %w", err)
	}
	if taken {
		return model.Link{}, false, fmt.Errorf("short URL %s: %w", link.ShortURL, ErrShortURLTaken)
	}

	created, err := scanLink(tx.QueryRow(ctx, `
		INSERT INTO links (id, original_url, short_url)
		VALUES ($1, $2, $3)
		RETURNING `+linkColumns,
		id, link.OriginalURL, link.ShortURL,
	))
	if err != nil {
		return model.Link{}, false, mapInsertError(err, link)
	}

	if err := tx.Commit(ctx); err != nil {
		if isPgError(err, pgSerializationFailure) {
			return model.Link{}, false, err
		}
		return model.Link{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, true, nil
}

// mapInsertError переводит нарушение уникальности при гонке в ошибки хранилища
func mapInsertError(err error, link model.Link) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to insert link: %w", err)
	}

	if pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case constraintShortURL:
			return fmt.Errorf("short URL %s: %w", link.ShortURL, ErrShortURLTaken)
		case constraintOriginalURL:
			return errOriginalURLRace
		}
		return fmt.Errorf("link %s: %w", link.ID, ErrDuplicateEntry)
	}

	if pgErr.Code == pgSerializationFailure {
		return err
	}

	return fmt.Errorf("failed to insert link: %w", err)
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// getLinkBy column подставляется только из констант этого файла
func (ds *DatabaseStore) getLinkBy(ctx context.Context, column, value string) (model.Link, error) {
	link, err := scanLink(ds.pool.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE `+column+` = $1`, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("%s %s: %w", column, value, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) GetLinkByID(ctx context.Context, id string) (model.Link, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.Link{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	link, err := scanLink(ds.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM links WHERE id = $1`, parsed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) GetLinkByShortURL(ctx context.Context, shortURL string) (model.Link, error) {
	return ds.getLinkBy(ctx, "short_url", shortURL)
}

func (ds *DatabaseStore) ListLinks(ctx context.Context, limit, offset int) ([]model.Link, int, error) {
	limit = max(limit, 0)
	offset = max(offset, 0)

	var total int
	if err := ds.pool.QueryRow(ctx, `SELECT count(*) FROM links`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count links: %w", err)
	}

	rows, err := ds.pool.Query(ctx, `
		SELECT `+linkColumns+`
		FROM links
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list links: %w", err)
	}

	links, err := collectLinks(rows)
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

func (ds *DatabaseStore) ListAllLinks(ctx context.Context) ([]model.Link, error) {
	rows, err := ds.pool.Query(ctx, `SELECT `+linkColumns+` FROM links ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return collectLinks(rows)
}

func collectLinks(rows pgx.Rows) ([]model.Link, error) {
	defer rows.Close()

	links := []model.Link{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

func (ds *DatabaseStore) DeleteLink(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	tag, err := ds.pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, parsed)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	return nil
}

// IncrementAccessCount одним UPDATE находит ссылку и увеличивает счётчик, без потерянных обновлений
func (ds *DatabaseStore) IncrementAccessCount(ctx context.Context, shortURL string) (model.Link, error) {
	link, err := scanLink(ds.pool.QueryRow(ctx, `
		UPDATE links
		SET access_count = access_count + 1, updated_at = now()
		WHERE short_url = $1
		RETURNING `+linkColumns,
		shortURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("short URL %s: %w", shortURL, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to increment access count: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) CreateReport(ctx context.Context, report model.Report) (model.Report, error) {
	id, err := uuid.Parse(report.ID)
	if err != nil {
		return model.Report{}, fmt.Errorf("invalid report id %q: %w", report.ID, err)
	}

	created, err := scanReport(ds.pool.QueryRow(ctx, `
		INSERT INTO reports (id, file_name, public_url, file_size)
		VALUES ($1, $2, $3, $4)
		RETURNING `+reportColumns,
		id, report.FileName, report.PublicURL, report.FileSize,
	))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return model.Report{}, fmt.Errorf("report %s: %w", report.FileName, ErrDuplicateEntry)
		}
		return model.Report{}, fmt.Errorf("failed to insert report: %w", err)
	}

	return created, nil
}

func (ds *DatabaseStore) ListReports(ctx context.Context) ([]model.Report, error) {
	rows, err := ds.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := []model.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return reports, nil
}
