//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, update model.UserUpdate) error
	UpdateCounters(ctx context.Context, db *gorm.DB, userID uuid.UUID, counters model.UserCounters) error
	SetEmailConfirmed(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
	SetPasswordHash(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error
	ListEnabled(ctx context.Context, db *gorm.DB) ([]*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if (errors.As(result.Error, &pgErr) && pgErr.Code == "23505") || errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "email", user.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "email", user.Email)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by email in DB", "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.FindByEmail: %w", result.Error)
	}
	return &user, nil
}

// Update は nil でないフィールドだけを更新します
func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, update model.UserUpdate) error {
	logger := middleware.GetLogger(ctx)
	cols := update.Columns()
	if len(cols) == 0 {
		return nil
	}

	result := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(cols)
	if result.Error != nil {
		logger.Error("Error updating user in DB", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) UpdateCounters(ctx context.Context, db *gorm.DB, userID uuid.UUID, counters model.UserCounters) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"xp_score":           counters.XPScore,
		"total_translations": counters.TotalTranslations,
		"hit_percentage":     counters.HitPercentage,
	})
	if result.Error != nil {
		logger.Error("Error updating user counters", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.UpdateCounters: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) SetEmailConfirmed(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	result := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("email_confirmed", true)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error confirming user email", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.SetEmailConfirmed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) SetPasswordHash(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	result := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("password_hash", hash)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating password hash", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.SetPasswordHash: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ListEnabled は有効なユーザーを作成順で返します
func (r *gormUserRepository) ListEnabled(ctx context.Context, db *gorm.DB) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var users []*model.User
	if err := db.WithContext(ctx).Where("enabled = ?", true).Order("created_at ASC").Find(&users).Error; err != nil {
		logger.Error("Error listing enabled users", "error", err)
		return nil, fmt.Errorf("gormUserRepository.ListEnabled: %w", err)
	}
	return users, nil
}
