package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
)

// loadAWSConfig は auth_type に応じて認証方法を切り替えた AWS 設定を読み込みます。
// SES と S3 (アバター) で共通です。
func loadAWSConfig(ctx context.Context, region, authType, accessKeyID, secretAccessKey string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}

	switch authType {
	case "static_credentials":
		slog.Info("Configuring AWS client with static credentials.")
		if accessKeyID == "" || secretAccessKey == "" {
			return aws.Config{}, errors.New("auth_type is 'static_credentials' but access_key_id or secret_access_key is missing")
		}
		creds := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role":
		// SDK のデフォルト認証チェーンに任せる
		slog.Info("Configuring AWS client with IAM Role credentials.")
	default:
		slog.Warn("Unknown AWS auth_type specified, defaulting to IAM Role.", "type", authType)
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// SESMailer は AWS SES を使ってメールを送信する実装です
type SESMailer struct {
	client *sesv2.Client
	from   string
}

func NewSESMailer(ctx context.Context, cfg *config.SESConfig) (*SESMailer, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.Region, cfg.AuthType, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, err
	}
	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.From,
	}, nil
}

// Send は AWS SES を使用してテキストメールを送信します
func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		logger.Error("Failed to send email via SES", "error", err, "to", to)
		return err
	}

	logger.Info("Email sent successfully via SES", "to", to, "subject", subject)
	return nil
}
