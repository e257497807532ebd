// Package aws implements the AWS repository on top of the AWS SDK for Go v2.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/account"
	"github.com/aws/aws-sdk-go-v2/service/amplify"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
	"github.com/diillson/amplify-outputs/internal/domain/repository"
	"github.com/diillson/amplify-outputs/internal/shared/types"
)

// AWSRepositoryImpl implementa o AWSRepository com cache de configuração por perfil.
type AWSRepositoryImpl struct {
	cfgCache     map[string]aws.Config
	loadConfig   func(ctx context.Context, profile string) (aws.Config, error)
	clients      clientFactories
	regionSource string
	sharedFiles  func() (configFile, credentialsFile string)
	logger       *zap.Logger
}

// Option customizes the repository.
type Option func(*AWSRepositoryImpl)

// WithRegionSource selects where regions come from: "account" (default) or "ec2".
func WithRegionSource(source string) Option {
	return func(r *AWSRepositoryImpl) {
		if source != "" {
			r.regionSource = source
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *AWSRepositoryImpl) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository(opts ...Option) (repository.AWSRepository, error) {
	r := &AWSRepositoryImpl{
		cfgCache:     make(map[string]aws.Config),
		loadConfig:   loadSharedConfig,
		clients:      defaultClientFactories(),
		regionSource: types.RegionSourceAccount,
		sharedFiles:  sharedFilePaths,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.regionSource != types.RegionSourceAccount && r.regionSource != types.RegionSourceEC2 {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedSource, r.regionSource)
	}

	return r, nil
}

func loadSharedConfig(ctx context.Context, profile string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, profile)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

// regionalConfig returns a copy of the profile config pinned to region.
// An empty region keeps the profile's own region, or the fallback if it has none.
func (r *AWSRepositoryImpl) regionalConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return aws.Config{}, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}
	if regionalCfg.Region == "" {
		regionalCfg.Region = fallbackRegion
	}
	return regionalCfg, nil
}

// GetAccountID returns the account behind the profile.
func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile, region string) (string, error) {
	cfg, err := r.regionalConfig(ctx, profile, region)
	if err != nil {
		return "", err
	}

	result, err := r.clients.sts(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profile, err)
	}
	return aws.ToString(result.Account), nil
}

// ListRegions returns every region known to the account with its opt-in status.
func (r *AWSRepositoryImpl) ListRegions(ctx context.Context, profile string) ([]entity.Region, error) {
	cfg, err := r.regionalConfig(ctx, profile, "")
	if err != nil {
		return nil, err
	}

	r.logger.Debug("listing regions", zap.String("profile", profile), zap.String("source", r.regionSource))

	if r.regionSource == types.RegionSourceEC2 {
		return describeEC2Regions(ctx, r.clients.ec2(cfg), profile)
	}
	return listAccountRegions(ctx, r.clients.account(cfg), profile)
}

func listAccountRegions(ctx context.Context, client AccountClient, profile string) ([]entity.Region, error) {
	input := &account.ListRegionsInput{}
	regions := []entity.Region{}

	for {
		output, err := client.ListRegions(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("error listing regions for profile %s: %w", profile, err)
		}
		for _, region := range output.Regions {
			regions = append(regions, entity.Region{
				Name:   aws.ToString(region.RegionName),
				Status: entity.RegionStatus(region.RegionOptStatus),
			})
		}
		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}

	return regions, nil
}

// EC2 reports opt-in status with its own vocabulary.
var ec2OptInStatus = map[string]entity.RegionStatus{
	"opt-in-not-required": entity.RegionStatusEnabledByDefault,
	"opted-in":            entity.RegionStatusEnabled,
	"not-opted-in":        entity.RegionStatusDisabled,
}

func describeEC2Regions(ctx context.Context, client EC2Client, profile string) ([]entity.Region, error) {
	output, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(true)})
	if err != nil {
		return nil, fmt.Errorf("error describing regions for profile %s: %w", profile, err)
	}

	regions := make([]entity.Region, 0, len(output.Regions))
	for _, region := range output.Regions {
		optIn := aws.ToString(region.OptInStatus)
		status, ok := ec2OptInStatus[optIn]
		if !ok {
			status = entity.RegionStatus(optIn)
		}
		regions = append(regions, entity.Region{
			Name:   aws.ToString(region.RegionName),
			Status: status,
		})
	}
	return regions, nil
}

// ListApps returns the Amplify apps deployed in region.
func (r *AWSRepositoryImpl) ListApps(ctx context.Context, profile, region string) ([]entity.App, error) {
	cfg, err := r.regionalConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	client := r.clients.amplify(cfg)

	r.logger.Debug("listing amplify apps", zap.String("profile", profile), zap.String("region", region))

	input := &amplify.ListAppsInput{}
	apps := []entity.App{}

	for {
		output, err := client.ListApps(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("error listing Amplify apps for profile %s in %s: %w", profile, region, err)
		}
		for _, app := range output.Apps {
			apps = append(apps, entity.App{
				ID:            aws.ToString(app.AppId),
				Name:          aws.ToString(app.Name),
				Platform:      string(app.Platform),
				DefaultDomain: aws.ToString(app.DefaultDomain),
			})
		}
		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}

	return apps, nil
}

// ListBranches returns the branches of the Amplify app appID.
func (r *AWSRepositoryImpl) ListBranches(ctx context.Context, profile, region, appID string) ([]entity.Branch, error) {
	cfg, err := r.regionalConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	client := r.clients.amplify(cfg)

	r.logger.Debug("listing amplify branches", zap.String("profile", profile), zap.String("region", region), zap.String("app_id", appID))

	input := &amplify.ListBranchesInput{AppId: aws.String(appID)}
	branches := []entity.Branch{}

	for {
		output, err := client.ListBranches(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("error listing branches for app %s in %s: %w", appID, region, err)
		}
		for _, branch := range output.Branches {
			branches = append(branches, entity.Branch{
				Name:        aws.ToString(branch.BranchName),
				DisplayName: aws.ToString(branch.DisplayName),
				Stage:       string(branch.Stage),
			})
		}
		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}

	return branches, nil
}
