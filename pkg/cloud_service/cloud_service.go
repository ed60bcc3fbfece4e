package cloud_service

import "time"

// CloudService is one entry in the fixed export-destination catalog. The
// connections are simulated: toggling one on performs no real OAuth flow or
// network call.
type CloudService struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Connected bool       `json:"connected"`
	LastSync  *time.Time `json:"lastSync,omitempty"`
}

// Catalog returns the closed set of export destinations, in display order.
// Email starts connected; everything else starts disconnected.
func Catalog() []CloudService {
	return []CloudService{
		{ID: "google-sheets", Name: "Google Sheets", Color: "#34a853"},
		{ID: "dropbox", Name: "Dropbox", Color: "#0061ff"},
		{ID: "onedrive", Name: "OneDrive", Color: "#0078d4"},
		{ID: "notion", Name: "Notion", Color: "#000000"},
		{ID: "email", Name: "Email", Color: "#ea4335", Connected: true},
		{ID: "slack", Name: "Slack", Color: "#4a154b"},
	}
}
