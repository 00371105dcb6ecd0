package model

import "time"

// Project is a playtest project owning any number of devlog versions.
// Pure domain model, no persistence tags beyond JSON.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Version is one devlog revision of a project. Its page content lives in a
// separate content row keyed by (project_id, version_id).
type Version struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}
