package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/amplify-outputs/internal/domain/repository"
	"github.com/diillson/amplify-outputs/internal/shared/types"
)

var configExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	workDir string
	homeDir string
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	workDir, _ := os.Getwd()
	homeDir, _ := os.UserHomeDir()
	return &ConfigRepositoryImpl{workDir: workDir, homeDir: homeDir}
}

// FindConfigFile returns the first existing file among
// ./.amplify-outputs.{yaml,yml,toml,json} and ~/.config/amplify-outputs/config.{...}.
// Returns an empty string when none exists.
func (r *ConfigRepositoryImpl) FindConfigFile() string {
	candidates := []string{}
	if r.workDir != "" {
		for _, ext := range configExtensions {
			candidates = append(candidates, filepath.Join(r.workDir, ".amplify-outputs"+ext))
		}
	}
	if r.homeDir != "" {
		for _, ext := range configExtensions {
			candidates = append(candidates, filepath.Join(r.homeDir, ".config", "amplify-outputs", "config"+ext))
		}
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// #nosec G304 -- config file path comes from the user or the standard search locations
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}
