package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
	"github.com/diillson/amplify-outputs/internal/domain/repository"
	"github.com/diillson/amplify-outputs/internal/shared/types"
)

// Prompt messages.
const (
	profilePrompt = "Please select the AWS profile to use"
	regionPrompt  = "Please select the AWS region to use"
	appPrompt     = "Please select the Amplify app to use"
	branchPrompt  = "Please select the Amplify branch to use"
)

var errUnexpectedSelection = errors.New("prompt returned an unknown option")

var bold = color.New(color.Bold).SprintFunc()

// WizardUseCase walks the user from an AWS profile down to an Amplify branch
// and hands the result to the output generator.
type WizardUseCase struct {
	awsRepo   repository.AWSRepository
	generator repository.OutputGenerator
	console   types.ConsoleInterface
	logger    *zap.Logger
}

// NewWizardUseCase creates a new wizard use case.
func NewWizardUseCase(
	awsRepo repository.AWSRepository,
	generator repository.OutputGenerator,
	console types.ConsoleInterface,
	logger *zap.Logger,
) *WizardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardUseCase{
		awsRepo:   awsRepo,
		generator: generator,
		console:   console,
		logger:    logger,
	}
}

// RunWizard resolves the selection, prints the summary and runs the generator.
// A non-zero generator exit status is returned as *types.ExitCodeError.
func (uc *WizardUseCase) RunWizard(ctx context.Context, args *types.CLIArgs) error {
	selection, err := uc.ResolveSelection(ctx, args)
	if err != nil {
		return err
	}

	if args.ShowAccount {
		accountID, err := uc.awsRepo.GetAccountID(ctx, selection.Profile, selection.Region)
		if err != nil {
			uc.console.LogWarning("Could not resolve the account ID: %s", err)
		} else {
			selection.AccountID = accountID
		}
	}

	uc.console.Println(Summary(selection))

	if args.DryRun {
		uc.console.LogInfo("Dry run, not executing: %s", strings.Join(uc.generator.Command(selection), " "))
		return nil
	}

	code, err := uc.generator.Generate(ctx, selection)
	if err != nil {
		return err
	}
	if code != 0 {
		return &types.ExitCodeError{Code: code}
	}
	return nil
}

// ResolveSelection runs the profile, region, app and branch stages in order.
// Each stage only starts once the previous one produced a valid value.
func (uc *WizardUseCase) ResolveSelection(ctx context.Context, args *types.CLIArgs) (entity.Selection, error) {
	profile, err := uc.selectProfile(ctx, args.Profile)
	if err != nil {
		return entity.Selection{}, err
	}

	region, err := uc.selectRegion(ctx, profile, args.Region)
	if err != nil {
		return entity.Selection{}, err
	}

	app, err := uc.selectApp(ctx, profile, region, args.AppID)
	if err != nil {
		return entity.Selection{}, err
	}

	branch, err := uc.selectBranch(ctx, profile, region, app, args.Branch)
	if err != nil {
		return entity.Selection{}, err
	}

	selection := entity.Selection{
		Profile: profile,
		Region:  region,
		AppID:   app.ID,
		AppName: app.Name,
		Branch:  branch.Name,
	}
	uc.logger.Debug("selection resolved",
		zap.String("profile", selection.Profile),
		zap.String("region", selection.Region),
		zap.String("app_id", selection.AppID),
		zap.String("branch", selection.Branch),
	)
	return selection, nil
}

// Summary renders the confirmation line with every value in bold.
func Summary(selection entity.Selection) string {
	line := fmt.Sprintf("Generating outputs for %s branch of %s app in %s region using %s profile",
		bold(selection.Branch),
		bold(selection.AppName),
		bold(selection.Region),
		bold(selection.Profile),
	)
	if selection.AccountID != "" {
		line += fmt.Sprintf(" (account %s)", bold(selection.AccountID))
	}
	return line + "."
}

func (uc *WizardUseCase) selectProfile(ctx context.Context, preset string) (string, error) {
	status := uc.console.Status("Listing AWS profiles...")
	profiles, err := uc.awsRepo.ListProfiles(ctx)
	status.Stop()
	if err != nil {
		return "", err
	}

	if preset != "" {
		for _, profile := range profiles {
			if profile == preset {
				uc.console.LogInfo("Using AWS profile %s", preset)
				return preset, nil
			}
		}
		return "", fmt.Errorf("%w: AWS profile %q is not configured", types.ErrPresetNotFound, preset)
	}

	idx, err := uc.choose(profilePrompt, profiles)
	if err != nil {
		return "", err
	}
	return profiles[idx], nil
}

func (uc *WizardUseCase) selectRegion(ctx context.Context, profile, preset string) (string, error) {
	status := uc.console.Status("Listing AWS regions...")
	regions, err := uc.awsRepo.ListRegions(ctx, profile)
	status.Stop()
	if err != nil {
		return "", err
	}

	selectable := entity.SelectableRegions(regions)
	names := make([]string, 0, len(selectable))
	for _, region := range selectable {
		names = append(names, region.Name)
	}
	uc.logger.Debug("regions filtered", zap.Int("total", len(regions)), zap.Int("selectable", len(names)))

	if preset != "" {
		for _, name := range names {
			if name == preset {
				uc.console.LogInfo("Using AWS region %s", preset)
				return preset, nil
			}
		}
		return "", fmt.Errorf("%w: AWS region %q is not enabled for profile %s", types.ErrPresetNotFound, preset, profile)
	}

	var region string
	idx, err := uc.choose(regionPrompt, names)
	switch {
	case err == nil:
		region = names[idx]
	case errors.Is(err, types.ErrNoChoices), errors.Is(err, errUnexpectedSelection):
		uc.logger.Debug("region prompt produced no value", zap.Error(err))
	default:
		return "", err
	}

	if region == "" {
		return "", types.ErrNoRegionSelected
	}
	return region, nil
}

func (uc *WizardUseCase) selectApp(ctx context.Context, profile, region, preset string) (entity.App, error) {
	status := uc.console.Status("Listing Amplify apps...")
	apps, err := uc.awsRepo.ListApps(ctx, profile, region)
	status.Stop()
	if err != nil {
		return entity.App{}, err
	}

	if len(apps) == 0 {
		return entity.App{}, types.ErrNoAppsFound
	}

	var app entity.App
	if preset != "" {
		found := false
		for _, candidate := range apps {
			if candidate.ID == preset {
				app, found = candidate, true
				break
			}
		}
		if !found {
			return entity.App{}, fmt.Errorf("%w: Amplify app %q not found in %s", types.ErrPresetNotFound, preset, region)
		}
		uc.console.LogInfo("Using Amplify app %s", app.Label())
	} else {
		labels := make([]string, len(apps))
		for i, candidate := range apps {
			labels[i] = candidate.Label()
		}
		idx, err := uc.choose(appPrompt, labels)
		if err != nil {
			return entity.App{}, err
		}
		app = apps[idx]
	}

	if app.ID == "" {
		return entity.App{}, types.ErrAppMissingID
	}
	return app, nil
}

func (uc *WizardUseCase) selectBranch(ctx context.Context, profile, region string, app entity.App, preset string) (entity.Branch, error) {
	status := uc.console.Status("Listing Amplify branches...")
	branches, err := uc.awsRepo.ListBranches(ctx, profile, region, app.ID)
	status.Stop()
	if err != nil {
		return entity.Branch{}, err
	}

	if len(branches) == 0 {
		return entity.Branch{}, &types.NoBranchesError{App: app.Label(), Region: region}
	}

	var branch entity.Branch
	if preset != "" {
		found := false
		for _, candidate := range branches {
			if candidate.Name == preset {
				branch, found = candidate, true
				break
			}
		}
		if !found {
			return entity.Branch{}, fmt.Errorf("%w: branch %q not found in Amplify app %s", types.ErrPresetNotFound, preset, app.Label())
		}
		uc.console.LogInfo("Using Amplify branch %s", branch.Name)
	} else {
		labels := make([]string, len(branches))
		for i, candidate := range branches {
			labels[i] = candidate.Label()
		}
		idx, err := uc.choose(branchPrompt, labels)
		if err != nil {
			return entity.Branch{}, err
		}
		branch = branches[idx]
	}

	if branch.Name == "" {
		return entity.Branch{}, types.ErrBranchMissingName
	}
	return branch, nil
}

// choose prompts for one of labels and guarantees the returned index is usable.
func (uc *WizardUseCase) choose(message string, labels []string) (int, error) {
	idx, err := uc.console.Select(message, labels)
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(labels) {
		return -1, fmt.Errorf("%s: %w", message, errUnexpectedSelection)
	}
	return idx, nil
}
