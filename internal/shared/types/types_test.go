package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConfigFlagsWin(t *testing.T) {
	args := &CLIArgs{Profile: "flag-profile"}
	cfg := &Config{
		Profile:       "file-profile",
		Region:        "eu-west-1",
		PackageRunner: "npx",
		ShowAccount:   true,
	}

	args.ApplyConfig(cfg)

	assert.Equal(t, "flag-profile", args.Profile)
	assert.Equal(t, "eu-west-1", args.Region)
	assert.Equal(t, "npx", args.PackageRunner)
	assert.True(t, args.ShowAccount)
}

func TestApplyConfigNil(t *testing.T) {
	args := &CLIArgs{Region: "us-east-1"}
	args.ApplyConfig(nil)
	assert.Equal(t, "us-east-1", args.Region)
}

func TestNoBranchesError(t *testing.T) {
	err := fmt.Errorf("select branch: %w", &NoBranchesError{App: "Site", Region: "us-east-1"})

	assert.True(t, errors.Is(err, ErrNoBranchesFound))
	assert.Contains(t, err.Error(), "No branches found for Amplify app Site in region us-east-1")
}

func TestExitCodeError(t *testing.T) {
	var exitErr *ExitCodeError
	err := fmt.Errorf("wrapped: %w", &ExitCodeError{Code: 3})

	assert.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
}
