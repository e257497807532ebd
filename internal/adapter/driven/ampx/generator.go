// Package ampx runs `ampx generate outputs` for a resolved Amplify selection.
package ampx

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
	"github.com/diillson/amplify-outputs/internal/shared/types"
)

// InteractiveRunner runs a command attached to the terminal and returns its exit code.
type InteractiveRunner interface {
	Interactive(ctx context.Context, name string, args ...string) (int, error)
}

// Options holds the pass-through flags for `ampx generate outputs`.
type Options struct {
	// PackageRunner is the command prefix that launches ampx, e.g. "pnpm exec" or "npx".
	PackageRunner  string
	Format         string
	OutDir         string
	OutputsVersion string
}

// Generator invokes ampx through a package runner. It implements repository.OutputGenerator.
type Generator struct {
	runner  InteractiveRunner
	prefix  []string
	options Options
	logger  *zap.Logger
}

// NewGenerator builds a Generator. An empty PackageRunner falls back to types.DefaultPackageRunner.
func NewGenerator(runner InteractiveRunner, options Options, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	packageRunner := options.PackageRunner
	if packageRunner == "" {
		packageRunner = types.DefaultPackageRunner
	}
	prefix := strings.Fields(packageRunner)
	if len(prefix) == 0 {
		return nil, types.ErrEmptyPackageRunner
	}

	return &Generator{runner: runner, prefix: prefix, options: options, logger: logger}, nil
}

// Executable returns the binary that will be launched.
func (g *Generator) Executable() string {
	return g.prefix[0]
}

// Command returns the full argv for the selection.
func (g *Generator) Command(selection entity.Selection) []string {
	argv := append([]string{}, g.prefix...)
	argv = append(argv,
		"ampx",
		"--profile", selection.Profile,
		"--region", selection.Region,
		"generate", "outputs",
		"--app-id", selection.AppID,
		"--branch", selection.Branch,
	)

	if g.options.Format != "" {
		argv = append(argv, "--format", g.options.Format)
	}
	if g.options.OutDir != "" {
		argv = append(argv, "--out-dir", g.options.OutDir)
	}
	if g.options.OutputsVersion != "" {
		argv = append(argv, "--outputs-version", g.options.OutputsVersion)
	}

	return argv
}

// Generate runs ampx and returns its exit code unchanged.
func (g *Generator) Generate(ctx context.Context, selection entity.Selection) (int, error) {
	argv := g.Command(selection)
	g.logger.Debug("invoking output generator", zap.Strings("argv", argv))

	code, err := g.runner.Interactive(ctx, argv[0], argv[1:]...)
	if err != nil {
		return code, fmt.Errorf("failed to run output generator: %w", err)
	}
	return code, nil
}
