// Package model defines storage records for the persistence layer.
package model

import "time"

// KVRecord represents the kv_records table: one JSON document per logical
// storage key, mirroring the original browser-storage layout.
type KVRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the KVRecord.
func (KVRecord) TableName() string {
	return "kv_records"
}
