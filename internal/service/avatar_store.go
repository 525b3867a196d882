package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"google.golang.org/api/option"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

// avatarPathSegment はアバターのオブジェクトキーと公開URLに含まれるディレクトリ名です
const avatarPathSegment = "avatars/"

// AvatarStore はアバター画像の保存先です
type AvatarStore interface {
	// Put は name (avatars/ 配下のファイル名) で保存し、公開URLを返します
	Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
	// Delete は公開URLが指すオブジェクトを削除します
	Delete(ctx context.Context, publicURL string) error
}

// ValidateAvatar は画像の MIME タイプとサイズを検証します
func ValidateAvatar(contentType string, size, maxBytes int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return model.NewAppError("INVALID_AVATAR_TYPE", "O arquivo deve ser uma imagem.", "avatar", model.ErrInvalidInput)
	}
	if size <= 0 {
		return model.NewAppError("INVALID_AVATAR", "O arquivo está vazio.", "avatar", model.ErrInvalidInput)
	}
	if size > maxBytes {
		return model.NewAppError("AVATAR_TOO_LARGE", fmt.Sprintf("A imagem deve ter no máximo %dMB.", maxBytes/(1024*1024)), "avatar", model.ErrInvalidInput)
	}
	return nil
}

// AvatarObjectName は <user_id>-<ulid>.<ext> 形式のファイル名を生成します
func AvatarObjectName(userID uuid.UUID, contentType string, now time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0))
	return fmt.Sprintf("%s-%s.%s", userID.String(), strings.ToLower(id.String()), avatarExtension(contentType))
}

func avatarExtension(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	}
	sub := strings.TrimPrefix(ct, "image/")
	if i := strings.Index(sub, "+"); i >= 0 {
		sub = sub[:i]
	}
	if sub == "" {
		return "img"
	}
	return sub
}

// avatarNameFromURL は公開URLを "/avatars/" で分割してファイル名を取り出します
func avatarNameFromURL(publicURL string) (string, error) {
	parts := strings.Split(publicURL, "/"+avatarPathSegment)
	if len(parts) < 2 {
		return "", fmt.Errorf("not an avatar url: %s", publicURL)
	}
	name := parts[len(parts)-1]
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid avatar name in url: %s", publicURL)
	}
	return name, nil
}

// NewAvatarStore は設定に応じた AvatarStore を生成します
func NewAvatarStore(ctx context.Context, cfg *config.Config) (AvatarStore, error) {
	logger := slog.Default()
	switch cfg.Avatar.Type {
	case "s3":
		logger.Info("Initializing S3 avatar store...", "bucket", cfg.Avatar.Bucket)
		return newS3AvatarStore(ctx, &cfg.Avatar)
	case "gcs":
		logger.Info("Initializing GCS avatar store...", "bucket", cfg.Avatar.Bucket)
		return newGCSAvatarStore(ctx, &cfg.Avatar)
	case "disk":
		logger.Info("Initializing disk avatar store...", "dir", cfg.Avatar.Dir)
		return NewDiskAvatarStore(cfg.Avatar.Dir, cfg.Avatar.PublicBaseURL)
	default:
		logger.Warn("Unknown avatar store type, defaulting to disk", "type", cfg.Avatar.Type)
		return NewDiskAvatarStore(cfg.Avatar.Dir, cfg.Avatar.PublicBaseURL)
	}
}

// --- ディスク ---

type diskAvatarStore struct {
	dir           string
	publicBaseURL string
}

// NewDiskAvatarStore は dir/avatars 配下に保存し、publicBaseURL/avatars/<name> を返すストアです
func NewDiskAvatarStore(dir, publicBaseURL string) (AvatarStore, error) {
	avatarDir := filepath.Join(dir, strings.TrimSuffix(avatarPathSegment, "/"))
	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &diskAvatarStore{dir: avatarDir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (d *diskAvatarStore) Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	f, err := os.Create(filepath.Join(d.dir, filepath.Base(name)))
	if err != nil {
		return "", fmt.Errorf("diskAvatarStore.Put: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, io.LimitReader(body, size)); err != nil {
		return "", fmt.Errorf("diskAvatarStore.Put: %w", err)
	}
	middleware.GetLogger(ctx).Debug("Avatar written to disk", "name", name)
	return d.publicBaseURL + "/" + avatarPathSegment + name, nil
}

func (d *diskAvatarStore) Delete(ctx context.Context, publicURL string) error {
	name, err := avatarNameFromURL(publicURL)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(d.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("diskAvatarStore.Delete: %w", err)
	}
	return nil
}

// --- S3 ---

type s3AvatarStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func newS3AvatarStore(ctx context.Context, cfg *config.AvatarConfig) (AvatarStore, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.Region, cfg.AuthType, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, err
	}
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &s3AvatarStore{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

func (s *s3AvatarStore) Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	key := avatarPathSegment + name
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("s3AvatarStore.Put: %w", err)
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *s3AvatarStore) Delete(ctx context.Context, publicURL string) error {
	name, err := avatarNameFromURL(publicURL)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(avatarPathSegment + name),
	})
	if err != nil {
		return fmt.Errorf("s3AvatarStore.Delete: %w", err)
	}
	return nil
}

// --- GCS ---

type gcsAvatarStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

func newGCSAvatarStore(ctx context.Context, cfg *config.AvatarConfig) (AvatarStore, error) {
	var opts []option.ClientOption
	switch {
	case cfg.EmulatorHost != "":
		// STORAGE_EMULATOR_HOST はクライアント生成時に参照される
		if err := os.Setenv("STORAGE_EMULATOR_HOST", strings.TrimRight(cfg.EmulatorHost, "/")); err != nil {
			return nil, err
		}
		opts = append(opts, option.WithoutAuthentication())
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile), option.WithScopes(storage.ScopeReadWrite))
	default:
		opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	base := cfg.PublicBaseURL
	if base == "" {
		base = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &gcsAvatarStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

func (g *gcsAvatarStore) Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	key := avatarPathSegment + name
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"
	if _, err := io.Copy(w, io.LimitReader(body, size)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcsAvatarStore.Put: failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcsAvatarStore.Put: failed to close GCS writer: %w", err)
	}
	return g.publicBaseURL + "/" + key, nil
}

func (g *gcsAvatarStore) Delete(ctx context.Context, publicURL string) error {
	name, err := avatarNameFromURL(publicURL)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err = g.client.Bucket(g.bucket).Object(avatarPathSegment + name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcsAvatarStore.Delete: %w", err)
	}
	return nil
}
