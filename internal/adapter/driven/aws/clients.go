package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/account"
	"github.com/aws/aws-sdk-go-v2/service/amplify"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// fallbackRegion is used for global endpoints when the profile has no region configured.
const fallbackRegion = "us-east-1"

// AccountClient is the subset of the Account API used to list regions.
type AccountClient interface {
	ListRegions(ctx context.Context, params *account.ListRegionsInput, optFns ...func(*account.Options)) (*account.ListRegionsOutput, error)
}

// EC2Client is the subset of the EC2 API used as an alternative region source.
type EC2Client interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// AmplifyClient is the subset of the Amplify API used to list apps and branches.
type AmplifyClient interface {
	ListApps(ctx context.Context, params *amplify.ListAppsInput, optFns ...func(*amplify.Options)) (*amplify.ListAppsOutput, error)
	ListBranches(ctx context.Context, params *amplify.ListBranchesInput, optFns ...func(*amplify.Options)) (*amplify.ListBranchesOutput, error)
}

// STSClient is the subset of the STS API used to resolve the account ID.
type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// clientFactories builds service clients from a loaded configuration.
type clientFactories struct {
	account func(cfg aws.Config) AccountClient
	ec2     func(cfg aws.Config) EC2Client
	amplify func(cfg aws.Config) AmplifyClient
	sts     func(cfg aws.Config) STSClient
}

func defaultClientFactories() clientFactories {
	return clientFactories{
		account: func(cfg aws.Config) AccountClient { return account.NewFromConfig(cfg) },
		ec2:     func(cfg aws.Config) EC2Client { return ec2.NewFromConfig(cfg) },
		amplify: func(cfg aws.Config) AmplifyClient { return amplify.NewFromConfig(cfg) },
		sts:     func(cfg aws.Config) STSClient { return sts.NewFromConfig(cfg) },
	}
}
