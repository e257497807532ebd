package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/adapter/driven/ampx"
	"github.com/diillson/amplify-outputs/internal/adapter/driven/aws"
	"github.com/diillson/amplify-outputs/internal/adapter/driven/awscli"
	"github.com/diillson/amplify-outputs/internal/adapter/driven/shell"
	"github.com/diillson/amplify-outputs/internal/application/usecase"
	"github.com/diillson/amplify-outputs/internal/domain/repository"
	"github.com/diillson/amplify-outputs/internal/shared/types"
)

var (
	defaultMissingExecutables = shell.MissingExecutables
	missingExecutables        = defaultMissingExecutables
)

// BuildWizard wires the repositories and generator selected by args.
func BuildWizard(args *types.CLIArgs, console types.ConsoleInterface, logger *zap.Logger) (Wizard, error) {
	runner := shell.NewRunner(logger)

	var awsRepo repository.AWSRepository
	required := []string{}

	switch args.Backend {
	case types.BackendSDK:
		repo, err := aws.NewAWSRepository(aws.WithRegionSource(args.RegionSource), aws.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		awsRepo = repo
	case types.BackendCLI:
		awsRepo = awscli.NewRepository(runner, logger)
		required = append(required, awscli.Executable)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedBackend, args.Backend)
	}

	generator, err := ampx.NewGenerator(runner, ampx.Options{
		PackageRunner:  args.PackageRunner,
		Format:         args.Format,
		OutDir:         args.OutDir,
		OutputsVersion: args.OutputsVersion,
	}, logger)
	if err != nil {
		return nil, err
	}
	if !args.DryRun {
		required = append(required, generator.Executable())
	}

	if missing := missingExecutables(required...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrMissingExecutables, strings.Join(missing, ", "))
	}

	return usecase.NewWizardUseCase(awsRepo, generator, console, logger), nil
}
