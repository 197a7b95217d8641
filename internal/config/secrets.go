package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// RedisSecret is the JSON document stored in AWS Secrets Manager for Redis credentials.
type RedisSecret struct {
	Password string `json:"password"`
}

// secretGetter is the subset of the Secrets Manager client used here.
type secretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps AWS Secrets Manager operations.
type SecretsManagerClient struct {
	client secretGetter
}

// NewSecretsManagerClient creates a new Secrets Manager client.
// It loads AWS credentials from the Lambda execution role or the local profile.
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SecretsManagerClient{
		client: secretsmanager.NewFromConfig(cfg),
	}, nil
}

// GetRedisSecret fetches and parses Redis credentials from Secrets Manager.
func (c *SecretsManagerClient) GetRedisSecret(ctx context.Context, secretName string) (*RedisSecret, error) {
	if secretName == "" {
		return nil, fmt.Errorf("secret name is empty")
	}

	output, err := c.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch secret %q from secrets manager: %w", secretName, err)
	}

	if output.SecretString == nil {
		return nil, fmt.Errorf("secret %q has no string value (binary secrets not supported)", secretName)
	}

	var secret RedisSecret
	if err := json.Unmarshal([]byte(*output.SecretString), &secret); err != nil {
		return nil, fmt.Errorf("parse secret %q as JSON: %w", secretName, err)
	}

	if secret.Password == "" {
		return nil, fmt.Errorf("secret %q missing required field: password", secretName)
	}

	return &secret, nil
}

// ResolveRedisPassword replaces the Redis password with the one stored in
// Secrets Manager when a secret name is configured.
func (c *AppConfig) ResolveRedisPassword(ctx context.Context, sm *SecretsManagerClient) error {
	if c.Redis.PasswordSecret == "" {
		return nil
	}

	secret, err := sm.GetRedisSecret(ctx, c.Redis.PasswordSecret)
	if err != nil {
		return err
	}

	c.Redis.Password = secret.Password
	return nil
}
