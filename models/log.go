package models

// ConstructionLog is a daily site log entry. ProjectRef is a display string
// chosen by the author; no referential integrity against the project
// collection is enforced or implied.
type ConstructionLog struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Weather    string `json:"weather"`
	ProjectRef string `json:"projectId"`
	WorkItems  string `json:"workItems"`
	Workers    int    `json:"workers"`
	Notes      string `json:"notes,omitempty"`
}
