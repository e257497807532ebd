package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/domain/repository"
	"github.com/diillson/amplify-outputs/internal/shared/logging"
	"github.com/diillson/amplify-outputs/internal/shared/types"
	"github.com/diillson/amplify-outputs/pkg/version"
)

// Wizard is the use case driven by the root command.
type Wizard interface {
	RunWizard(ctx context.Context, args *types.CLIArgs) error
}

// WizardFactory builds the wizard once the arguments are known.
type WizardFactory func(args *types.CLIArgs, console types.ConsoleInterface, logger *zap.Logger) (Wizard, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	configRepo    repository.ConfigRepository
	console       types.ConsoleInterface
	wizardFactory WizardFactory
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version:       versionStr,
		wizardFactory: BuildWizard,
	}

	rootCmd := &cobra.Command{
		Use:   "amplify-outputs",
		Short: "Generate Amplify outputs for an interactively selected app and branch",
		Long: `Pick an AWS profile, region, Amplify app and branch, then run
"ampx generate outputs" for that selection.

Examples:
  amplify-outputs
  amplify-outputs --profile dev --region us-east-1
  amplify-outputs --backend cli --package-runner npx --out-dir src`,
		Version:       version.FormatVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "amplify-outputs version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("profile", "p", "", "AWS profile to use instead of prompting")
	flags.StringP("region", "r", "", "AWS region to use instead of prompting")
	flags.StringP("app-id", "a", "", "Amplify app ID to use instead of prompting")
	flags.StringP("branch", "b", "", "Amplify branch to use instead of prompting")
	flags.String("backend", "", "How AWS is queried: sdk or cli (default: sdk)")
	flags.String("region-source", "", "Where regions come from with the sdk backend: account or ec2 (default: account)")
	flags.String("package-runner", "", `Command prefix used to launch ampx (default: "pnpm exec")`)
	flags.String("format", "", "Output format passed to ampx generate outputs")
	flags.String("out-dir", "", "Output directory passed to ampx generate outputs")
	flags.String("outputs-version", "", "Outputs schema version passed to ampx generate outputs")
	flags.Bool("show-account", false, "Resolve and display the AWS account ID before generating")
	flags.Bool("dry-run", false, "Print the ampx command instead of running it")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.Bool("no-banner", false, "Do not print the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides os.Args for the root command.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// SetConfigRepository sets the repository used to load the configuration file.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}

// SetConsole sets the console used for prompts and messages.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}

// SetWizardFactory replaces the function that wires the wizard.
func (app *CLIApp) SetWizardFactory(factory WizardFactory) {
	app.wizardFactory = factory
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() *types.CLIArgs {
	flags := app.rootCmd.Flags()
	getString := func(name string) string {
		value, _ := flags.GetString(name)
		return strings.TrimSpace(value)
	}
	getBool := func(name string) bool {
		value, _ := flags.GetBool(name)
		return value
	}

	return &types.CLIArgs{
		ConfigFile:     getString("config-file"),
		Profile:        getString("profile"),
		Region:         getString("region"),
		AppID:          getString("app-id"),
		Branch:         getString("branch"),
		Backend:        getString("backend"),
		RegionSource:   getString("region-source"),
		PackageRunner:  getString("package-runner"),
		Format:         getString("format"),
		OutDir:         getString("out-dir"),
		OutputsVersion: getString("outputs-version"),
		ShowAccount:    getBool("show-account"),
		DryRun:         getBool("dry-run"),
		Debug:          getBool("debug"),
		NoBanner:       getBool("no-banner"),
	}
}

// loadConfig merges the configuration file into args and applies defaults.
func (app *CLIApp) loadConfig(args *types.CLIArgs) error {
	if app.configRepo != nil {
		path := args.ConfigFile
		if path == "" {
			path = app.configRepo.FindConfigFile()
		}
		if path != "" {
			cfg, err := app.configRepo.LoadConfigFile(path)
			if err != nil {
				return err
			}
			args.ApplyConfig(cfg)
		}
	}

	if args.Backend == "" {
		args.Backend = types.BackendSDK
	}
	if args.RegionSource == "" {
		args.RegionSource = types.RegionSourceAccount
	}
	if args.PackageRunner == "" {
		args.PackageRunner = types.DefaultPackageRunner
	}
	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	args := app.parseArgs()
	if err := app.loadConfig(args); err != nil {
		return err
	}

	logger, err := logging.ForDebug(args.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("arguments resolved",
		zap.String("backend", args.Backend),
		zap.String("region_source", args.RegionSource),
		zap.String("package_runner", args.PackageRunner),
		zap.Bool("dry_run", args.DryRun),
	)

	if !args.NoBanner {
		displayWelcomeBanner(cmd.OutOrStdout(), app.version)
	}

	wizard, err := app.wizardFactory(args, app.console, logger)
	if err != nil {
		return err
	}

	return wizard.RunWizard(cmd.Context(), args)
}

// ExitCode reports the process exit status for err, writing the diagnostic to stderr.
// A generator failure keeps its own status and output.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *types.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(stderr, err)
	return 1
}
