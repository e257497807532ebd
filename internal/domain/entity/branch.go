package entity

// UnknownBranchLabel is shown in place of a branch without a name.
const UnknownBranchLabel = "Unknown Branch"

// Branch represents a branch of an Amplify application.
type Branch struct {
	Name        string `json:"branchName"`
	DisplayName string `json:"displayName,omitempty"`
	Stage       string `json:"stage,omitempty"`
}

// Label returns the text used for the branch in a selection prompt.
func (b Branch) Label() string {
	if b.Name == "" {
		return UnknownBranchLabel
	}
	return b.Name
}
