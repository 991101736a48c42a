package facts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/pkg/psqlbuilder"
)

const table = "session_facts"

// upsertSuffix сохраняет прежние значения для полей, переданных как NULL.
// Истекшая, но еще не удаленная запись перезаписывается целиком.
const upsertSuffix = `ON CONFLICT (username) DO UPDATE SET
	last_cinema_index = CASE WHEN session_facts.expires_at > EXCLUDED.updated_at
		THEN COALESCE(EXCLUDED.last_cinema_index, session_facts.last_cinema_index)
		ELSE EXCLUDED.last_cinema_index END,
	last_date = CASE WHEN session_facts.expires_at > EXCLUDED.updated_at
		THEN COALESCE(EXCLUDED.last_date, session_facts.last_date)
		ELSE EXCLUDED.last_date END,
	expires_at = EXCLUDED.expires_at,
	updated_at = EXCLUDED.updated_at`

// Repository репозиторий для работы с фактами сессий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория фактов сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает неистекшие факты пользователя
func (r *Repository) Get(ctx context.Context, username string, now time.Time) (*domain.SessionFacts, error) {
	query, args, err := buildGet(username, now)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var facts domain.SessionFacts
	var lastCinemaIndex sql.NullInt64
	var lastDate sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&facts.Username,
		&lastCinemaIndex,
		&lastDate,
		&facts.ExpiresAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFactsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan facts: %v", ErrScanRow, err)
	}

	if lastCinemaIndex.Valid {
		idx := int(lastCinemaIndex.Int64)
		facts.LastCinemaIndex = &idx
	}
	if lastDate.Valid {
		facts.LastDate = &lastDate.Time
	}

	return &facts, nil
}

// Upsert создает или обновляет факты пользователя
// nil-поля не перезаписывают значения, сохраненные до now
func (r *Repository) Upsert(ctx context.Context, facts *domain.SessionFacts, now time.Time) error {
	query, args, err := buildUpsert(facts, now)
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет факты пользователя; отсутствие записи не считается ошибкой
func (r *Repository) Delete(ctx context.Context, username string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpired удаляет все истекшие факты и возвращает количество удаленных записей
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpired(now)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func buildGet(username string, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"username",
		"last_cinema_index",
		"last_date",
		"expires_at",
	).
		From(table).
		Where(squirrel.Eq{"username": username}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
}

func buildUpsert(facts *domain.SessionFacts, now time.Time) (string, []interface{}, error) {
	var lastCinemaIndex, lastDate interface{}
	if facts.LastCinemaIndex != nil {
		lastCinemaIndex = *facts.LastCinemaIndex
	}
	if facts.LastDate != nil {
		lastDate = *facts.LastDate
	}

	return psqlbuilder.Insert(table).
		Columns(
			"username",
			"last_cinema_index",
			"last_date",
			"expires_at",
			"updated_at",
		).
		Values(
			facts.Username,
			lastCinemaIndex,
			lastDate,
			facts.ExpiresAt,
			now,
		).
		Suffix(upsertSuffix).
		ToSql()
}

func buildDeleteExpired(now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Delete(table).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
}
