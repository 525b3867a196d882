package model

import "time"

// KVEntry は KV ストア (gorm 実装) の1レコードです
type KVEntry struct {
	Namespace string    `gorm:"primaryKey;type:varchar(128)"`
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
