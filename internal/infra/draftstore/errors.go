package draftstore

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек его TTL
	ErrDraftNotFound = errors.New("draftstore: draft not found or expired")
)
