package entity

// UnknownAppLabel is shown in place of an app without a name.
const UnknownAppLabel = "Unknown App"

// App represents a deployed Amplify application.
type App struct {
	ID            string `json:"appId"`
	Name          string `json:"name"`
	Platform      string `json:"platform,omitempty"`
	DefaultDomain string `json:"defaultDomain,omitempty"`
}

// Label returns the text used for the app in a selection prompt.
func (a App) Label() string {
	if a.Name == "" {
		return UnknownAppLabel
	}
	return a.Name
}
