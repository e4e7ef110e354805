package conf

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// PgConnStr assembles the Postgres connection string from POSTGRES_*
// environment variables. Local runs carry the password in POSTGRES_PW;
// everywhere else it is fetched from AWS secrets manager under
// POSTGRES_PASSWORD_SECRET_NAME.
func PgConnStr(ctx context.Context) (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	pw := os.Getenv("POSTGRES_PW")
	if pw == "" && host != "localhost" {
		secretName := os.Getenv("POSTGRES_PASSWORD_SECRET_NAME")
		if secretName == "" {
			return "", fmt.Errorf("neither POSTGRES_PW nor POSTGRES_PASSWORD_SECRET_NAME is set")
		}
		secretValue, err := getSecretFromAWS(ctx, secretName)
		if err != nil {
			return "", fmt.Errorf("failed to get postgres password secret: %w", err)
		}
		var secret struct {
			Password string `json:"password"`
		}
		if err := json.Unmarshal([]byte(secretValue), &secret); err != nil {
			return "", fmt.Errorf("failed to parse postgres password secret: %w", err)
		}
		pw = secret.Password
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_USER"),
		pw,
		os.Getenv("POSTGRES_DB"),
		os.Getenv("POSTGRES_SSLMODE"),
	), nil
}

func getSecretFromAWS(ctx context.Context, secretName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load aws config: %w", err)
	}
	svc := secretsmanager.NewFromConfig(cfg)
	result, err := svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s carries no string value", secretName)
	}
	return *result.SecretString, nil
}
