//go:generate mockery --name IdentityRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

// IdentityRepository は OAuth プロバイダのアカウントとユーザーの紐付けを扱います
type IdentityRepository interface {
	Create(ctx context.Context, db *gorm.DB, identity *model.Identity) error
	FindByProvider(ctx context.Context, db *gorm.DB, authProvider string, providerID string) (*model.Identity, error)
}

type gormIdentityRepository struct{}

func NewGormIdentityRepository() IdentityRepository {
	return &gormIdentityRepository{}
}

func (r *gormIdentityRepository) Create(ctx context.Context, db *gorm.DB, identity *model.Identity) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(identity)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if (errors.As(result.Error, &pgErr) && pgErr.Code == "23505") || errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			logger.Warn("Identity already linked", "auth_provider", identity.AuthProvider, "user_id", identity.UserID.String())
			return model.ErrConflict
		}
		logger.Error(
			"Error creating identity in DB",
			"error", result.Error,
			"auth_provider", identity.AuthProvider,
			"provider_id", identity.ProviderID,
		)
		return fmt.Errorf("gormIdentityRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormIdentityRepository) FindByProvider(ctx context.Context, db *gorm.DB, authProvider string, providerID string) (*model.Identity, error) {
	logger := middleware.GetLogger(ctx)
	var identity model.Identity

	result := db.WithContext(ctx).
		Where("auth_provider = ? AND provider_id = ?", authProvider, providerID).
		First(&identity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding identity by provider in DB", "error", result.Error, "auth_provider", authProvider)
		return nil, fmt.Errorf("gormIdentityRepository.FindByProvider: %w", result.Error)
	}
	return &identity, nil
}
