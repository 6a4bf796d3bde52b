package repository

import "errors"

var (
	ErrNotFound      = errors.New("error not found")
	ErrSchemaMissing = errors.New("error schema missing, set PG_MIGRATION_DIR or create tables manually")
)
