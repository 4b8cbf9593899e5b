package error

import "errors"

// Storage domain errors.
var (
	// ErrStorageUnavailable is returned when the backing store cannot be
	// reached. Reads distinguish this from an absent key so callers can tell
	// "no data yet" from "storage down".
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageErrorCode defines error codes for storage errors.
type StorageErrorCode string

const (
	ErrCodeStorageUnavailable StorageErrorCode = "STO-010001"
)
