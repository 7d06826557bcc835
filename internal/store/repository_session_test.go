package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/models"
)

var sessionColumns = []string{
	"session_id", "user_id", "token", "server_url",
	"last_subscription_fetch", "expires_at", "created_at",
}

func newSessionRepo(t *testing.T, db *sql.DB) SessionRepository {
	t.Helper()
	return NewSessionRepository(newDBFromSQL(db), logger.Nop())
}

func TestCurrentSession(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	watermark := now.Add(-10 * time.Minute)
	expiry := now.Add(24 * time.Hour)

	t.Run("success: latest session returned", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		rows := sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", "user-1", "jwt-token", "http://chat.example.com", &watermark, &expiry, now)
		mock.ExpectQuery(regexp.QuoteMeta(getCurrentSession)).
			WillReturnRows(rows)

		session, err := repo.CurrentSession(testContext())

		require.NoError(t, err)
		assert.Equal(t, "sess-1", session.ID)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "jwt-token", session.Token)
		assert.Equal(t, "http://chat.example.com", session.ServerURL)
		require.NotNil(t, session.LastSubscriptionFetch)
		assert.Equal(t, watermark.UTC(), session.LastSubscriptionFetch.UTC())
		require.NotNil(t, session.ExpiresAt)
		assert.Equal(t, expiry.UTC(), session.ExpiresAt.UTC())
		assert.Equal(t, now.UTC(), session.CreatedAt.UTC())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: watermark and expiry may be NULL", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		rows := sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", "user-1", "jwt-token", "http://chat.example.com", nil, nil, now)
		mock.ExpectQuery(regexp.QuoteMeta(getCurrentSession)).
			WillReturnRows(rows)

		session, err := repo.CurrentSession(testContext())

		require.NoError(t, err)
		assert.Nil(t, session.LastSubscriptionFetch)
		assert.Nil(t, session.ExpiresAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: no session stored", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(getCurrentSession)).
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		_, err := repo.CurrentSession(testContext())

		require.ErrorIs(t, err, ErrSessionNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: scan fails (wrong column count)", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		rows := sqlmock.NewRows([]string{"session_id"}).AddRow("sess-1")
		mock.ExpectQuery(regexp.QuoteMeta(getCurrentSession)).
			WillReturnRows(rows)

		_, err := repo.CurrentSession(testContext())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan session row")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveSession(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	expiry := now.Add(24 * time.Hour)

	session := models.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Token:     "jwt-token",
		ServerURL: "http://chat.example.com",
		ExpiresAt: &expiry,
		CreatedAt: now,
	}

	t.Run("success: session upserted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(saveSession)).
			WithArgs("sess-1", "user-1", "jwt-token", "http://chat.example.com", nil, expiry, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveSession(testContext(), session)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: exec fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(saveSession)).
			WithArgs("sess-1", "user-1", "jwt-token", "http://chat.example.com", nil, expiry, now).
			WillReturnError(errors.New("connection refused"))

		err := repo.SaveSession(testContext(), session)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save session (session_id=sess-1)")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetLastSubscriptionFetch(t *testing.T) {
	fetchedAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success: watermark moved", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(setLastSubscriptionFetch)).
			WithArgs(driver.Value(fetchedAt), driver.Value("sess-1")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetLastSubscriptionFetch(testContext(), "sess-1", fetchedAt)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: unknown session", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(setLastSubscriptionFetch)).
			WithArgs(driver.Value(fetchedAt), driver.Value("sess-missing")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetLastSubscriptionFetch(testContext(), "sess-missing", fetchedAt)

		require.ErrorIs(t, err, ErrSessionNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: exec fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSessionRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(setLastSubscriptionFetch)).
			WithArgs(driver.Value(fetchedAt), driver.Value("sess-1")).
			WillReturnError(errors.New("connection refused"))

		err := repo.SetLastSubscriptionFetch(testContext(), "sess-1", fetchedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set last subscription fetch (session_id=sess-1)")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
