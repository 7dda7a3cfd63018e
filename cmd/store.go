package cmd

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/fakeyudi/tipsfortoday/internal/config"
	"github.com/fakeyudi/tipsfortoday/internal/session"
)

// openStore returns the SessionStore selected by c.Store.
func openStore(ctx context.Context, c config.Config) (session.SessionStore, error) {
	switch c.Store {
	case config.StoreMemory:
		return session.NewMemoryStore(), nil
	case config.StoreDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		ds, err := session.NewDynamoStore(awsdynamodb.NewFromConfig(awsCfg), c.DynamoTable, c.Owner(), c.TTL())
		if err != nil {
			return nil, err
		}
		return ds, nil
	default:
		return session.NewSessionStore()
	}
}
