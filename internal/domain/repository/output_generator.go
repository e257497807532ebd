package repository

import (
	"context"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
)

// OutputGenerator runs the Amplify outputs generator for a resolved selection.
type OutputGenerator interface {
	// Command returns the argv that Generate would execute.
	Command(selection entity.Selection) []string
	// Generate runs the generator attached to the terminal and returns its exit code.
	Generate(ctx context.Context, selection entity.Selection) (int, error)
}
