package awscli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diillson/amplify-outputs/internal/domain/entity"
)

type recordingRunner struct {
	outputs  map[string]string
	err      error
	commands []string
}

func (r *recordingRunner) Capture(_ context.Context, name string, args ...string) (string, error) {
	command := name + " " + strings.Join(args, " ")
	r.commands = append(r.commands, command)
	if r.err != nil {
		return "", r.err
	}
	return r.outputs[command], nil
}

func TestListProfiles(t *testing.T) {
	runner := &recordingRunner{outputs: map[string]string{
		"aws configure list-profiles": "dev\nprod\n\n",
	}}
	repo := NewRepository(runner, zap.NewNop())

	profiles, err := repo.ListProfiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "prod"}, profiles)
}

func TestListRegions(t *testing.T) {
	runner := &recordingRunner{outputs: map[string]string{
		"aws --profile dev account list-regions --output json": `{"Regions":[
			{"RegionName":"us-east-1","RegionOptStatus":"ENABLED"},
			{"RegionName":"us-west-2","RegionOptStatus":"DISABLED_BY_DEFAULT"}
		]}`,
	}}
	repo := NewRepository(runner, nil)

	regions, err := repo.ListRegions(context.Background(), "dev")

	require.NoError(t, err)
	assert.Equal(t, []entity.Region{
		{Name: "us-east-1", Status: entity.RegionStatusEnabled},
		{Name: "us-west-2", Status: entity.RegionStatusDisabledByDefault},
	}, regions)
}

func TestListAppsAndBranches(t *testing.T) {
	runner := &recordingRunner{outputs: map[string]string{
		"aws --profile dev --region us-east-1 amplify list-apps --output json": `{"apps":[
			{"appId":"app1","name":"Site","platform":"WEB","defaultDomain":"app1.amplifyapp.com"},
			{"name":"NoID"}
		]}`,
		"aws --profile dev --region us-east-1 amplify list-branches --app-id app1 --output json": `{"branches":[{"branchName":"main","stage":"PRODUCTION"},{}]}`,
	}}
	repo := NewRepository(runner, nil)

	apps, err := repo.ListApps(context.Background(), "dev", "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, []entity.App{
		{ID: "app1", Name: "Site", Platform: "WEB", DefaultDomain: "app1.amplifyapp.com"},
		{Name: "NoID"},
	}, apps)

	branches, err := repo.ListBranches(context.Background(), "dev", "us-east-1", "app1")
	require.NoError(t, err)
	assert.Equal(t, []entity.Branch{{Name: "main", Stage: "PRODUCTION"}, {}}, branches)
}

func TestGetAccountID(t *testing.T) {
	runner := &recordingRunner{outputs: map[string]string{
		"aws --profile dev --region us-east-1 sts get-caller-identity --output json": `{"Account":"123456789012","Arn":"arn"}`,
	}}
	repo := NewRepository(runner, nil)

	id, err := repo.GetAccountID(context.Background(), "dev", "us-east-1")

	require.NoError(t, err)
	assert.Equal(t, "123456789012", id)
}

func TestEmptyOutputYieldsNoApps(t *testing.T) {
	repo := NewRepository(&recordingRunner{outputs: map[string]string{}}, nil)

	apps, err := repo.ListApps(context.Background(), "dev", "us-east-1")

	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestInvalidJSON(t *testing.T) {
	runner := &recordingRunner{outputs: map[string]string{
		"aws --profile dev account list-regions --output json": "not json",
	}}
	repo := NewRepository(runner, nil)

	_, err := repo.ListRegions(context.Background(), "dev")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing aws cli output")
}

func TestRunnerErrorIsWrapped(t *testing.T) {
	cause := errors.New("aws exited with status 255")
	repo := NewRepository(&recordingRunner{err: cause}, nil)

	_, err := repo.ListBranches(context.Background(), "dev", "us-east-1", "app1")

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "error listing branches for app app1 in us-east-1")
}
