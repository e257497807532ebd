package aws

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
)

var sectionRegex = regexp.MustCompile(`^\s*\[\s*([^\]]+?)\s*\]\s*$`)

func sharedFilePaths() (string, string) {
	configFile := os.Getenv("AWS_CONFIG_FILE")
	if configFile == "" {
		configFile = config.DefaultSharedConfigFilename()
	}
	credentialsFile := os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = config.DefaultSharedCredentialsFilename()
	}
	return configFile, credentialsFile
}

// ListProfiles returns the profile names found in the shared config and credentials files.
func (r *AWSRepositoryImpl) ListProfiles(_ context.Context) ([]string, error) {
	configFile, credentialsFile := r.sharedFiles()

	profiles := make(map[string]bool)
	if err := parseProfiles(credentialsFile, false, profiles); err != nil {
		return nil, err
	}
	if err := parseProfiles(configFile, true, profiles); err != nil {
		return nil, err
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)
	return result, nil
}

// parseProfiles adds the profiles declared in path to profiles. A missing file is not an error.
// In the config file only [default] and [profile name] sections declare profiles;
// sso-session and services sections are skipped.
func parseProfiles(path string, isConfig bool, profiles map[string]bool) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := sectionRegex.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		name := match[1]
		if isConfig {
			switch {
			case name == "default":
			case strings.HasPrefix(name, "profile "):
				name = strings.TrimSpace(strings.TrimPrefix(name, "profile "))
			default:
				continue
			}
		}
		if name != "" {
			profiles[name] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	return nil
}
