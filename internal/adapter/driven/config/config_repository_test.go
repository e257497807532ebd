package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/amplify-outputs/internal/shared/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfigFileFormats(t *testing.T) {
	want := &types.Config{
		Profile:       "dev",
		Region:        "us-east-1",
		PackageRunner: "npx",
		OutDir:        "src",
		ShowAccount:   true,
	}

	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `profile: dev
region: us-east-1
package_runner: npx
out_dir: src
show_account: true
`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `profile = "dev"
region = "us-east-1"
package_runner = "npx"
out_dir = "src"
show_account = true
`,
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"profile":"dev","region":"us-east-1","package_runner":"npx","out_dir":"src","show_account":true}`,
		},
	}

	repo := NewConfigRepository()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), testCase.file)
			writeFile(t, path, testCase.content)

			cfg, err := repo.LoadConfigFile(path)

			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(dir)
	assert.ErrorContains(t, err, "is a directory")

	ini := filepath.Join(dir, "config.ini")
	writeFile(t, ini, "profile=dev")
	_, err = repo.LoadConfigFile(ini)
	assert.ErrorContains(t, err, "unsupported config file format: .ini")

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, "{")
	_, err = repo.LoadConfigFile(bad)
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestFindConfigFile(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()
	repo := &ConfigRepositoryImpl{workDir: workDir, homeDir: homeDir}

	assert.Equal(t, "", repo.FindConfigFile())

	homeConfig := filepath.Join(homeDir, ".config", "amplify-outputs", "config.toml")
	writeFile(t, homeConfig, `profile = "dev"`)
	assert.Equal(t, homeConfig, repo.FindConfigFile())

	localConfig := filepath.Join(workDir, ".amplify-outputs.yml")
	writeFile(t, localConfig, "profile: prod\n")
	assert.Equal(t, localConfig, repo.FindConfigFile())
}
