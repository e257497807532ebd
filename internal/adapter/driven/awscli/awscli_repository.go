// Package awscli implements the AWS repository by shelling out to the aws CLI.
package awscli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
	"github.com/diillson/amplify-outputs/internal/domain/repository"
)

// Executable is the aws CLI binary name.
const Executable = "aws"

// CaptureRunner runs a command and returns its standard output.
type CaptureRunner interface {
	Capture(ctx context.Context, name string, args ...string) (string, error)
}

// Repository lists AWS resources through the aws CLI.
type Repository struct {
	runner CaptureRunner
	logger *zap.Logger
}

// NewRepository creates a CLI-backed AWSRepository.
func NewRepository(runner CaptureRunner, logger *zap.Logger) repository.AWSRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{runner: runner, logger: logger}
}

type listRegionsOutput struct {
	Regions []entity.Region `json:"Regions"`
}

type listAppsOutput struct {
	Apps []entity.App `json:"apps"`
}

type listBranchesOutput struct {
	Branches []entity.Branch `json:"branches"`
}

type callerIdentityOutput struct {
	Account string `json:"Account"`
}

// ListProfiles runs `aws configure list-profiles`.
func (r *Repository) ListProfiles(ctx context.Context) ([]string, error) {
	out, err := r.runner.Capture(ctx, Executable, "configure", "list-profiles")
	if err != nil {
		return nil, fmt.Errorf("error listing AWS profiles: %w", err)
	}

	profiles := []string{}
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			profiles = append(profiles, name)
		}
	}
	return profiles, nil
}

// GetAccountID runs `aws sts get-caller-identity`.
func (r *Repository) GetAccountID(ctx context.Context, profile, region string) (string, error) {
	var output callerIdentityOutput
	if err := r.captureJSON(ctx, &output, "--profile", profile, "--region", region, "sts", "get-caller-identity"); err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profile, err)
	}
	return output.Account, nil
}

// ListRegions runs `aws account list-regions`.
func (r *Repository) ListRegions(ctx context.Context, profile string) ([]entity.Region, error) {
	var output listRegionsOutput
	if err := r.captureJSON(ctx, &output, "--profile", profile, "account", "list-regions"); err != nil {
		return nil, fmt.Errorf("error listing regions for profile %s: %w", profile, err)
	}
	return output.Regions, nil
}

// ListApps runs `aws amplify list-apps`.
func (r *Repository) ListApps(ctx context.Context, profile, region string) ([]entity.App, error) {
	var output listAppsOutput
	if err := r.captureJSON(ctx, &output, "--profile", profile, "--region", region, "amplify", "list-apps"); err != nil {
		return nil, fmt.Errorf("error listing Amplify apps for profile %s in %s: %w", profile, region, err)
	}
	return output.Apps, nil
}

// ListBranches runs `aws amplify list-branches`.
func (r *Repository) ListBranches(ctx context.Context, profile, region, appID string) ([]entity.Branch, error) {
	var output listBranchesOutput
	if err := r.captureJSON(ctx, &output, "--profile", profile, "--region", region, "amplify", "list-branches", "--app-id", appID); err != nil {
		return nil, fmt.Errorf("error listing branches for app %s in %s: %w", appID, region, err)
	}
	return output.Branches, nil
}

func (r *Repository) captureJSON(ctx context.Context, target interface{}, args ...string) error {
	args = append(args, "--output", "json")
	out, err := r.runner.Capture(ctx, Executable, args...)
	if err != nil {
		return err
	}

	r.logger.Debug("decoding aws cli output", zap.Strings("args", args), zap.Int("bytes", len(out)))

	if strings.TrimSpace(out) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(out), target); err != nil {
		return fmt.Errorf("error parsing aws cli output: %w", err)
	}
	return nil
}
