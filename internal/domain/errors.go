package domain

import "errors"

var (
	ErrSnapshotNotFound = errors.New("no snapshot for base currency")
	ErrAlertNotFound    = errors.New("alert not found or unauthorized")
	ErrUnauthenticated  = errors.New("not authenticated")
)
