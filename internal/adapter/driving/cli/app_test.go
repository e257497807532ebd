package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/adapter/driven/config"
	"github.com/diillson/amplify-outputs/internal/shared/types"
)

type recordingWizard struct {
	args *types.CLIArgs
	err  error
}

func (w *recordingWizard) RunWizard(_ context.Context, args *types.CLIArgs) error {
	w.args = args
	return w.err
}

type stubConfigRepository struct {
	found  string
	config *types.Config
	loaded []string
}

func (r *stubConfigRepository) LoadConfigFile(path string) (*types.Config, error) {
	r.loaded = append(r.loaded, path)
	return r.config, nil
}

func (r *stubConfigRepository) FindConfigFile() string {
	return r.found
}

func newTestApp(t *testing.T, wizard *recordingWizard, args ...string) (*CLIApp, *bytes.Buffer) {
	t.Helper()
	app := NewCLIApp("test")
	app.SetWizardFactory(func(*types.CLIArgs, types.ConsoleInterface, *zap.Logger) (Wizard, error) {
		return wizard, nil
	})
	if args == nil {
		args = []string{}
	}
	out := &bytes.Buffer{}
	app.rootCmd.SetOut(out)
	app.rootCmd.SetErr(out)
	app.SetArgs(args)
	return app, out
}

func TestExecuteDefaults(t *testing.T) {
	wizard := &recordingWizard{}
	app, out := newTestApp(t, wizard)

	require.NoError(t, app.Execute())

	require.NotNil(t, wizard.args)
	assert.Equal(t, types.BackendSDK, wizard.args.Backend)
	assert.Equal(t, types.RegionSourceAccount, wizard.args.RegionSource)
	assert.Equal(t, types.DefaultPackageRunner, wizard.args.PackageRunner)
	assert.Contains(t, out.String(), "Amplify Outputs CLI (vtest)")
}

func TestExecuteFlags(t *testing.T) {
	wizard := &recordingWizard{}
	app, out := newTestApp(t, wizard,
		"-p", "dev", "-r", "us-east-1", "--app-id", "app1", "--branch", "main",
		"--backend", "cli", "--region-source", "ec2", "--package-runner", "npx",
		"--format", "json", "--out-dir", "src", "--outputs-version", "1.3",
		"--show-account", "--dry-run", "--no-banner",
	)

	require.NoError(t, app.Execute())

	assert.Equal(t, &types.CLIArgs{
		Profile:        "dev",
		Region:         "us-east-1",
		AppID:          "app1",
		Branch:         "main",
		Backend:        types.BackendCLI,
		RegionSource:   types.RegionSourceEC2,
		PackageRunner:  "npx",
		Format:         "json",
		OutDir:         "src",
		OutputsVersion: "1.3",
		ShowAccount:    true,
		DryRun:         true,
		NoBanner:       true,
	}, wizard.args)
	assert.Empty(t, out.String())
}

func TestExecuteRejectsPositionalArgs(t *testing.T) {
	app, _ := newTestApp(t, &recordingWizard{}, "extra")
	require.Error(t, app.Execute())
}

func TestExecuteConfigFileFromSearch(t *testing.T) {
	wizard := &recordingWizard{}
	app, _ := newTestApp(t, wizard, "--profile", "flag", "--no-banner")
	repo := &stubConfigRepository{
		found:  "/work/.amplify-outputs.yaml",
		config: &types.Config{Profile: "file", Region: "eu-west-1", PackageRunner: "npx"},
	}
	app.SetConfigRepository(repo)

	require.NoError(t, app.Execute())

	assert.Equal(t, []string{"/work/.amplify-outputs.yaml"}, repo.loaded)
	assert.Equal(t, "flag", wizard.args.Profile)
	assert.Equal(t, "eu-west-1", wizard.args.Region)
	assert.Equal(t, "npx", wizard.args.PackageRunner)
}

func TestExecuteExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"cli\"\nbranch = \"main\"\n"), 0o600))

	wizard := &recordingWizard{}
	app, _ := newTestApp(t, wizard, "-C", path, "--no-banner")
	app.SetConfigRepository(config.NewConfigRepository())

	require.NoError(t, app.Execute())

	assert.Equal(t, types.BackendCLI, wizard.args.Backend)
	assert.Equal(t, "main", wizard.args.Branch)
}

func TestExecuteReturnsWizardError(t *testing.T) {
	app, _ := newTestApp(t, &recordingWizard{err: types.ErrNoAppsFound}, "--no-banner")
	require.ErrorIs(t, app.Execute(), types.ErrNoAppsFound)
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer

	assert.Equal(t, 0, ExitCode(nil, &stderr))
	assert.Empty(t, stderr.String())

	assert.Equal(t, 1, ExitCode(types.ErrNoAppsFound, &stderr))
	assert.Equal(t, "No Amplify apps found in the selected region\n", stderr.String())

	stderr.Reset()
	assert.Equal(t, 5, ExitCode(fmt.Errorf("run: %w", &types.ExitCodeError{Code: 5}), &stderr))
	assert.Empty(t, stderr.String())
}

func TestBuildWizardBackends(t *testing.T) {
	missingExecutables = func(...string) []string { return nil }
	t.Cleanup(func() { missingExecutables = defaultMissingExecutables })

	for _, backend := range []string{types.BackendSDK, types.BackendCLI} {
		wizard, err := BuildWizard(&types.CLIArgs{
			Backend:       backend,
			RegionSource:  types.RegionSourceAccount,
			PackageRunner: types.DefaultPackageRunner,
		}, nil, zap.NewNop())
		require.NoError(t, err, backend)
		require.NotNil(t, wizard, backend)
	}
}

func TestBuildWizardErrors(t *testing.T) {
	missingExecutables = func(...string) []string { return nil }
	t.Cleanup(func() { missingExecutables = defaultMissingExecutables })

	_, err := BuildWizard(&types.CLIArgs{Backend: "terraform"}, nil, zap.NewNop())
	require.ErrorIs(t, err, types.ErrUnsupportedBackend)

	_, err = BuildWizard(&types.CLIArgs{Backend: types.BackendSDK, RegionSource: "ssm"}, nil, zap.NewNop())
	require.ErrorIs(t, err, types.ErrUnsupportedSource)
}

func TestBuildWizardChecksExecutables(t *testing.T) {
	var requested []string
	missingExecutables = func(names ...string) []string {
		requested = names
		return names
	}
	t.Cleanup(func() { missingExecutables = defaultMissingExecutables })

	_, err := BuildWizard(&types.CLIArgs{
		Backend:       types.BackendCLI,
		RegionSource:  types.RegionSourceAccount,
		PackageRunner: "pnpm exec",
	}, nil, zap.NewNop())

	require.True(t, errors.Is(err, types.ErrMissingExecutables))
	assert.Equal(t, []string{"aws", "pnpm"}, requested)
	assert.Contains(t, err.Error(), "aws, pnpm")
}

func TestBuildWizardDryRunSkipsGeneratorCheck(t *testing.T) {
	var requested []string
	missingExecutables = func(names ...string) []string {
		requested = names
		return nil
	}
	t.Cleanup(func() { missingExecutables = defaultMissingExecutables })

	_, err := BuildWizard(&types.CLIArgs{
		Backend:       types.BackendSDK,
		RegionSource:  types.RegionSourceAccount,
		PackageRunner: "pnpm exec",
		DryRun:        true,
	}, nil, zap.NewNop())

	require.NoError(t, err)
	assert.Empty(t, requested)
}
