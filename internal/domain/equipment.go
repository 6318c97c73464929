package domain

// Equipment availability status. The backend owns transitions; clients treat
// the stored value as authoritative and re-fetch after any mutation.
const (
	StatusUnavailable = 0
	StatusAvailable   = 1
)

type Equipment struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status int    `json:"status"`
	Notes  string `json:"notes"`
}

// StatusString renders an equipment status for display. Values outside the
// known range are shown as "Unknown" but otherwise left opaque.
func StatusString(status int) string {
	switch status {
	case StatusUnavailable:
		return "Unavailable"
	case StatusAvailable:
		return "Available"
	default:
		return "Unknown"
	}
}
