package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-tax/libs/go/logger"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets (DB credentials, field encryption key,
// API key hash, JWT signing secret) from AWS Secrets Manager, falling back to
// plain environment variables for local runs.
type SecretsManagerClient struct {
	svc SecretsManagerAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API implementation
func NewSecretsManagerClientWithAPI(svc SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// fetch returns the secret string named by the ARN in secretArnEnvVar, or "" when the
// ARN is unset or the fetch fails
func (c *SecretsManagerClient) fetch(ctx context.Context, secretArnEnvVar string) string {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		logger.Debug("Secret ARN environment variable not set", zap.String("arnEnvVar", secretArnEnvVar))
		return ""
	}
	if c == nil || c.svc == nil {
		logger.Warn("Secrets Manager client not configured", zap.String("arnEnvVar", secretArnEnvVar))
		return ""
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil || result == nil || result.SecretString == nil || *result.SecretString == "" {
		logger.Warn("Failed to retrieve secret from Secrets Manager",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.Error(err))
		return ""
	}
	return *result.SecretString
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN specified by an environment variable.
// If the ARN environment variable (secretArnEnvVar) is not set or fetching fails,
// it falls back to reading the secret directly from another environment variable (fallbackEnvVar).
// Secrets stored as a JSON object with a single key resolve to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if fetched := c.fetch(ctx, secretArnEnvVar); fetched != "" {
		var secretJSON map[string]string
		if err := json.Unmarshal([]byte(fetched), &secretJSON); err == nil && len(secretJSON) == 1 {
			for key, value := range secretJSON {
				logger.Info("Fetched secret from Secrets Manager (single-key JSON)",
					zap.String("arnEnvVar", secretArnEnvVar),
					zap.String("jsonKey", key))
				return value, nil
			}
		}
		logger.Info("Fetched secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
		return fetched, nil
	}

	if secretValue := os.Getenv(fallbackEnvVar); secretValue != "" {
		logger.Info("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	logger.Error("Failed to retrieve secret from both Secrets Manager and direct environment variable",
		zap.String("arnEnvVar", secretArnEnvVar),
		zap.String("fallbackEnvVar", fallbackEnvVar))
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a JSON secret and unmarshals it into target. The fallback
// environment variable must hold JSON too.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error {
	if fetched := c.fetch(ctx, secretArnEnvVar); fetched != "" {
		err := json.Unmarshal([]byte(fetched), target)
		if err == nil {
			logger.Info("Fetched JSON secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
			return nil
		}
		logger.Warn("Failed to unmarshal JSON secret from Secrets Manager, falling back",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.Error(err))
	}

	fallbackValue := os.Getenv(fallbackEnvVar)
	if fallbackValue == "" {
		return fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
	}
	if err := json.Unmarshal([]byte(fallbackValue), target); err != nil {
		return fmt.Errorf("fallback %s is not JSON parsable: %w", fallbackEnvVar, err)
	}
	return nil
}
