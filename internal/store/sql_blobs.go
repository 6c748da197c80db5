package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// blobRepository is the SQL implementation of [BlobStore]. Blobs live in a
// single table keyed by their full path; the public URL is served by the
// storage server's files endpoint.
type blobRepository struct {
	db            *DB
	publicBaseURL string
}

// NewBlobRepository constructs a [BlobStore] backed by db whose public
// URLs are rooted at publicBaseURL (the storage server's files endpoint).
func NewBlobRepository(db *DB, publicBaseURL string) BlobStore {
	return &blobRepository{db: db, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (r *blobRepository) PutObject(ctx context.Context, path string, data []byte, opts PutOptions) error {
	builder := r.db.builder.
		Insert("blobs").
		Columns("path", "data", "content_type", "cache_seconds", "created_at").
		Values(path, data, opts.ContentType, opts.CacheSeconds, time.Now().UTC())

	if opts.Upsert {
		builder = builder.Suffix(`ON CONFLICT (path) DO UPDATE SET
			data = excluded.data,
			content_type = excluded.content_type,
			cache_seconds = excluded.cache_seconds`)
	} else {
		builder = builder.Suffix(`ON CONFLICT (path) DO NOTHING`)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build put object query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logger.Err(err).
			Str("path", path).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("put object failed")
		return fmt.Errorf("put object %s: %w", path, err)
	}

	if !opts.Upsert {
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("put object %s: %w", path, err)
		}
		if affected == 0 {
			return ErrObjectExists
		}
	}

	return nil
}

func (r *blobRepository) GetObject(ctx context.Context, path string) (Object, error) {
	query, args, err := r.db.builder.
		Select("data", "content_type", "cache_seconds").
		From("blobs").
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return Object{}, fmt.Errorf("build get object query: %w", err)
	}

	var object Object
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&object.Data, &object.ContentType, &object.CacheSeconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Object{}, ErrObjectNotFound
		}
		return Object{}, fmt.Errorf("get object %s: %w", path, err)
	}

	return object, nil
}

func (r *blobRepository) PublicURL(path string) string {
	return r.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}
