package models

import "time"

// AggregateRiskLevel is the four-step scale used for narrative and batch
// risk. It is deliberately finer than the per-object RiskLevel scale.
type AggregateRiskLevel string

const (
	AggregateRiskLow      AggregateRiskLevel = "low"
	AggregateRiskMedium   AggregateRiskLevel = "medium"
	AggregateRiskHigh     AggregateRiskLevel = "high"
	AggregateRiskCritical AggregateRiskLevel = "critical"
)

// RiskAnalysis is the outcome of synthesizing risk for one object or a
// batch of approaches. Computed per request; never persisted.
type RiskAnalysis struct {
	Analysis        string             `json:"analysis"`
	RiskLevel       AggregateRiskLevel `json:"riskLevel"`
	Recommendations []string           `json:"recommendations"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}
