package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsphweid/patterndex/constants"
	"github.com/jsphweid/patterndex/model"
)

var ErrNotFound = errors.New("report not found")

// Store persists analysis reports.
type Store interface {
	SaveReport(ctx context.Context, r model.Report) error
	GetReport(ctx context.Context, id string) (model.Report, error)
	FindByChecksum(ctx context.Context, checksum string) ([]model.Report, error)
	ListReports(ctx context.Context, limit int) ([]model.Report, error)
	Close() error
}

// Open returns the store selected by configuration.
func Open(cfg constants.Config) (Store, error) {
	switch cfg.Store {
	case constants.StoreSQLite:
		return NewSQLiteStore(cfg.DBPath)
	case constants.StoreDynamoDB:
		return NewDynamoStore(cfg.DynamoEndpoint, cfg.DynamoRegion, cfg.DynamoTable)
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
