package domain

import "time"

// ChangeRecord is one journaled mutation of a document.
type ChangeRecord struct {
	ID           string    `json:"id"`
	Operation    string    `json:"operation"`
	TargetKind   string    `json:"targetKind"`
	TargetID     string    `json:"targetId,omitempty"`
	PlanID       string    `json:"planId,omitempty"`
	Summary      string    `json:"summary"`
	DocumentPath string    `json:"documentPath"`
	CreatedAt    time.Time `json:"createdAt"`
}
