package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Profile        string
	Region         string
	AppID          string
	Branch         string
	Backend        string
	RegionSource   string
	PackageRunner  string
	Format         string
	OutDir         string
	OutputsVersion string
	ShowAccount    bool
	DryRun         bool
	Debug          bool
	NoBanner       bool
}

// ApplyConfig fills every argument the user left empty with the value from cfg.
// Flags always win over the configuration file.
func (a *CLIArgs) ApplyConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	fill := func(target *string, value string) {
		if *target == "" {
			*target = value
		}
	}

	fill(&a.Profile, cfg.Profile)
	fill(&a.Region, cfg.Region)
	fill(&a.AppID, cfg.AppID)
	fill(&a.Branch, cfg.Branch)
	fill(&a.Backend, cfg.Backend)
	fill(&a.RegionSource, cfg.RegionSource)
	fill(&a.PackageRunner, cfg.PackageRunner)
	fill(&a.Format, cfg.Format)
	fill(&a.OutDir, cfg.OutDir)
	fill(&a.OutputsVersion, cfg.OutputsVersion)

	if cfg.ShowAccount {
		a.ShowAccount = true
	}
}
