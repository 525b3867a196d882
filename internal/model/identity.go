package model

import "github.com/google/uuid"

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
	AuthProviderGitHub = "github"
)

// Identity は外部プロバイダのアカウントとユーザーの紐付けです
type Identity struct {
	ID     uint      `gorm:"primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"` // usersテーブルへの外部キー

	// どのプロバイダで、どのIDかを示す複合キー
	AuthProvider string `gorm:"type:varchar(50);not null;uniqueIndex:uq_identity_provider"`
	ProviderID   string `gorm:"not null;uniqueIndex:uq_identity_provider"`
}

func (Identity) TableName() string {
	return "identities"
}
