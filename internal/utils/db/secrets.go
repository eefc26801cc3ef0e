package db

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// retrieveCredentials resolve usuário/senha do banco: variáveis de
// ambiente têm precedência; sem elas, busca no Secrets Manager.
func retrieveCredentials(secretID string) (string, string, error) {
	secretUsername := os.Getenv("DB_USERNAME")
	secretPassword := os.Getenv("DB_PASSWORD")
	if secretUsername != "" && secretPassword != "" {
		return secretUsername, secretPassword, nil
	}
	if secretID == "" {
		return "", "", errors.New("DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID devem estar configurados")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", err
	}
	client := secretsmanager.NewFromConfig(cfg)

	result, err := client.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", err
	}

	var secret credentials
	if err := json.Unmarshal([]byte(aws.ToString(result.SecretString)), &secret); err != nil {
		return "", "", err
	}
	return secret.Username, secret.Password, nil
}
