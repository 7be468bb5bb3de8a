package aws

import (
	"context"
	"errors"
	"testing"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsManager struct {
	values   map[string]string
	err      error
	requests []string
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	id := sdkaws.ToString(params.SecretId)
	f.requests = append(f.requests, id)
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[id]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: sdkaws.String(value)}, nil
}

func TestGetSecretString(t *testing.T) {
	ctx := context.Background()

	t.Run("plain text secret", func(t *testing.T) {
		fake := &fakeSecretsManager{values: map[string]string{"arn:jwt": "signing-secret"}}
		t.Setenv("JWT_SECRET_ARN", "arn:jwt")

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(ctx, "JWT_SECRET_ARN", "JWT_SECRET")
		require.NoError(t, err)
		assert.Equal(t, "signing-secret", value)
		assert.Equal(t, []string{"arn:jwt"}, fake.requests)
	})

	t.Run("single key JSON secret", func(t *testing.T) {
		fake := &fakeSecretsManager{values: map[string]string{"arn:key": `{"FIELD_ENCRYPTION_KEY":"abc"}`}}
		t.Setenv("FIELD_ENCRYPTION_KEY_ARN", "arn:key")

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(ctx, "FIELD_ENCRYPTION_KEY_ARN", "FIELD_ENCRYPTION_KEY")
		require.NoError(t, err)
		assert.Equal(t, "abc", value)
	})

	t.Run("falls back to env var when fetch fails", func(t *testing.T) {
		fake := &fakeSecretsManager{err: errors.New("AccessDenied")}
		t.Setenv("API_KEY_HASH_ARN", "arn:hash")
		t.Setenv("API_KEY_HASH", "from-env")

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(ctx, "API_KEY_HASH_ARN", "API_KEY_HASH")
		require.NoError(t, err)
		assert.Equal(t, "from-env", value)
	})

	t.Run("falls back to env var when ARN unset", func(t *testing.T) {
		fake := &fakeSecretsManager{}
		t.Setenv("API_KEY_HASH_ARN", "")
		t.Setenv("API_KEY_HASH", "from-env")

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(ctx, "API_KEY_HASH_ARN", "API_KEY_HASH")
		require.NoError(t, err)
		assert.Equal(t, "from-env", value)
		assert.Empty(t, fake.requests)
	})

	t.Run("errors when nothing is configured", func(t *testing.T) {
		t.Setenv("MISSING_ARN", "")
		t.Setenv("MISSING", "")

		_, err := NewSecretsManagerClientWithAPI(&fakeSecretsManager{}).GetSecretString(ctx, "MISSING_ARN", "MISSING")
		assert.Error(t, err)
	})
}

func TestGetSecretJSON(t *testing.T) {
	ctx := context.Background()
	type rdsSecret struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Run("from Secrets Manager", func(t *testing.T) {
		fake := &fakeSecretsManager{values: map[string]string{"arn:rds": `{"username":"tax","password":"pw"}`}}
		t.Setenv("RDS_SECRET_ARN", "arn:rds")

		var secret rdsSecret
		require.NoError(t, NewSecretsManagerClientWithAPI(fake).GetSecretJSON(ctx, "RDS_SECRET_ARN", "RDS_SECRET", &secret))
		assert.Equal(t, "tax", secret.Username)
		assert.Equal(t, "pw", secret.Password)
	})

	t.Run("fallback must be JSON", func(t *testing.T) {
		t.Setenv("RDS_SECRET_ARN", "")
		t.Setenv("RDS_SECRET", "postgres://not-json")

		var secret rdsSecret
		assert.Error(t, NewSecretsManagerClientWithAPI(&fakeSecretsManager{}).GetSecretJSON(ctx, "RDS_SECRET_ARN", "RDS_SECRET", &secret))
	})

	t.Run("JSON fallback", func(t *testing.T) {
		t.Setenv("RDS_SECRET_ARN", "")
		t.Setenv("RDS_SECRET", `{"username":"local","password":"local"}`)

		var secret rdsSecret
		require.NoError(t, NewSecretsManagerClientWithAPI(&fakeSecretsManager{}).GetSecretJSON(ctx, "RDS_SECRET_ARN", "RDS_SECRET", &secret))
		assert.Equal(t, "local", secret.Username)
	})
}
