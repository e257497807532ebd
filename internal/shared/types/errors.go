package types

import (
	"errors"
	"fmt"
)

// User-facing fatal conditions. The messages are printed verbatim on stderr.
var (
	ErrNoRegionSelected   = errors.New("No AWS region selected")
	ErrNoAppsFound        = errors.New("No Amplify apps found in the selected region")
	ErrAppMissingID       = errors.New("Selected Amplify app does not have an App ID, unexpected state")
	ErrNoBranchesFound    = errors.New("No branches found")
	ErrBranchMissingName  = errors.New("Selected Amplify branch does not have a branch name, unexpected state")
	ErrNoChoices          = errors.New("no choices available")
	ErrPresetNotFound     = errors.New("preset value not found")
	ErrUnsupportedBackend = errors.New("unsupported backend")
	ErrUnsupportedSource  = errors.New("unsupported region source")
	ErrMissingExecutables = errors.New("required executables not found in PATH")
	ErrEmptyPackageRunner = errors.New("package runner must not be empty")
)

// NoBranchesError reports an app without branches in the chosen region.
type NoBranchesError struct {
	App    string
	Region string
}

func (e *NoBranchesError) Error() string {
	return fmt.Sprintf("No branches found for Amplify app %s in region %s", e.App, e.Region)
}

// Is lets errors.Is match NoBranchesError against ErrNoBranchesFound.
func (e *NoBranchesError) Is(target error) bool {
	return target == ErrNoBranchesFound
}

// ExitCodeError carries a non-zero exit status from the generator to main.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("generator exited with status %d", e.Code)
}
