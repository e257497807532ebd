package entity

// Selection holds the values resolved by the wizard, in the order they were chosen.
type Selection struct {
	Profile   string `json:"profile"`
	Region    string `json:"region"`
	AppID     string `json:"app_id"`
	AppName   string `json:"app_name"`
	Branch    string `json:"branch"`
	AccountID string `json:"account_id,omitempty"`
}
