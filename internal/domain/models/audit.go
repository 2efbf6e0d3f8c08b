package models

import "time"

// AuditEvent records how one engine decision was made: which resolution
// tier answered and with what confidence. Events are observability
// exhaust, not stored results.
type AuditEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"` // "classification" or "risk"
	Object     string    `json:"object,omitempty"`
	Method     string    `json:"method,omitempty"`
	OrbitClass string    `json:"orbit_class,omitempty"`
	RiskLevel  string    `json:"risk_level"`
	Confidence int       `json:"confidence"`
	At         time.Time `json:"at"`
}
