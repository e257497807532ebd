package types

// Backend names accepted by --backend.
const (
	BackendSDK = "sdk"
	BackendCLI = "cli"
)

// Region sources accepted by --region-source.
const (
	RegionSourceAccount = "account"
	RegionSourceEC2     = "ec2"
)

// DefaultPackageRunner is the command prefix used to launch ampx.
const DefaultPackageRunner = "pnpm exec"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile        string `json:"profile" yaml:"profile" toml:"profile"`
	Region         string `json:"region" yaml:"region" toml:"region"`
	AppID          string `json:"app_id" yaml:"app_id" toml:"app_id"`
	Branch         string `json:"branch" yaml:"branch" toml:"branch"`
	Backend        string `json:"backend" yaml:"backend" toml:"backend"`
	RegionSource   string `json:"region_source" yaml:"region_source" toml:"region_source"`
	PackageRunner  string `json:"package_runner" yaml:"package_runner" toml:"package_runner"`
	Format         string `json:"format" yaml:"format" toml:"format"`
	OutDir         string `json:"out_dir" yaml:"out_dir" toml:"out_dir"`
	OutputsVersion string `json:"outputs_version" yaml:"outputs_version" toml:"outputs_version"`
	ShowAccount    bool   `json:"show_account" yaml:"show_account" toml:"show_account"`
}
