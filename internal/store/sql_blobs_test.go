package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobRepository_PutObject_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBlobRepository(NewDBFromSQL(db, logger.Nop()), "http://storage.local/api/v2/files")

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO blobs (path,data,content_type,cache_seconds,created_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (path) DO UPDATE SET`,
	)).WithArgs("rooms/r1/f1", []byte("blob"), "application/octet-stream", 31536000, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PutObject(context.Background(), "rooms/r1/f1", []byte("blob"), PutOptions{
		ContentType:  "application/octet-stream",
		CacheSeconds: 31536000,
		Upsert:       true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_PutObject_NoOverwriteConflict(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBlobRepository(NewDBFromSQL(db, logger.Nop()), "http://storage.local")

	// DO NOTHING affects zero rows when the path is occupied.
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (path) DO NOTHING`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.PutObject(context.Background(), "rooms/r1/f1", []byte("blob"), PutOptions{})
	assert.ErrorIs(t, err, ErrObjectExists)
}

func TestBlobRepository_GetObject(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBlobRepository(NewDBFromSQL(db, logger.Nop()), "http://storage.local")

	rows := sqlmock.NewRows([]string{"data", "content_type", "cache_seconds"}).
		AddRow([]byte("blob"), "image/png", 3600)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT data, content_type, cache_seconds FROM blobs WHERE path = $1`,
	)).WithArgs("rooms/r1/f1").WillReturnRows(rows)

	object, err := repo.GetObject(context.Background(), "rooms/r1/f1")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), object.Data)
	assert.Equal(t, "image/png", object.ContentType)
	assert.Equal(t, 3600, object.CacheSeconds)
}

func TestBlobRepository_GetObject_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBlobRepository(NewDBFromSQL(db, logger.Nop()), "http://storage.local")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data, content_type, cache_seconds FROM blobs`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"data", "content_type", "cache_seconds"}))

	_, err := repo.GetObject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestBlobRepository_PublicURL(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewBlobRepository(NewDBFromSQL(db, logger.Nop()), "http://storage.local/api/v2/files/")

	assert.Equal(t,
		"http://storage.local/api/v2/files/rooms/r1/f1",
		repo.PublicURL("/rooms/r1/f1"),
	)
}
