package entity

// RegionStatus is the opt-in status reported for a region.
type RegionStatus string

const (
	RegionStatusEnabled           RegionStatus = "ENABLED"
	RegionStatusEnabledByDefault  RegionStatus = "ENABLED_BY_DEFAULT"
	RegionStatusEnabling          RegionStatus = "ENABLING"
	RegionStatusDisabling         RegionStatus = "DISABLING"
	RegionStatusDisabled          RegionStatus = "DISABLED"
	RegionStatusDisabledByDefault RegionStatus = "DISABLED_BY_DEFAULT"
)

// Region represents an AWS region together with its enablement status.
type Region struct {
	Name   string       `json:"RegionName"`
	Status RegionStatus `json:"RegionOptStatus"`
}

// Selectable reports whether the region can be offered to the user.
func (r Region) Selectable() bool {
	return r.Status == RegionStatusEnabled || r.Status == RegionStatusEnabledByDefault
}

// SelectableRegions returns the enabled regions in input order.
func SelectableRegions(regions []Region) []Region {
	selectable := make([]Region, 0, len(regions))
	for _, region := range regions {
		if region.Selectable() {
			selectable = append(selectable, region)
		}
	}
	return selectable
}
