package repository

import (
	"context"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
)

// AWSRepository defines the interface for the AWS lookups the wizard needs.
type AWSRepository interface {
	// Profile Operations
	ListProfiles(ctx context.Context) ([]string, error)
	GetAccountID(ctx context.Context, profile, region string) (string, error)

	// Region Operations
	ListRegions(ctx context.Context, profile string) ([]entity.Region, error)

	// Amplify Operations
	ListApps(ctx context.Context, profile, region string) ([]entity.App, error)
	ListBranches(ctx context.Context, profile, region, appID string) ([]entity.Branch, error)
}
