package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrDuplicate      = errors.New("record already exists")
)
