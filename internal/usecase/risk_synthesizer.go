package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"NeoWatch/internal/domain/models"
	"NeoWatch/internal/domain/repository"
	"NeoWatch/internal/domain/service"
	"NeoWatch/pkg/logger"
)

// RiskSynthesizer turns close-approach records into a risk analysis.
// The risk level is always computed deterministically; the generative
// service only supplies narrative text and recommendations, and any
// failure there degrades to fixed templates. Synthesize never returns
// an error.
type RiskSynthesizer struct {
	generator service.NarrativeGenerator
	logger    *logger.Logger
	metrics   repository.Metrics
	auditor   Auditor
}

type SynthesizerOption func(*RiskSynthesizer)

func WithSynthesizerLogger(log *logger.Logger) SynthesizerOption {
	return func(s *RiskSynthesizer) { s.logger = log }
}

func WithSynthesizerMetrics(m repository.Metrics) SynthesizerOption {
	return func(s *RiskSynthesizer) { s.metrics = m }
}

func WithSynthesizerAuditor(a Auditor) SynthesizerOption {
	return func(s *RiskSynthesizer) { s.auditor = a }
}

// NewRiskSynthesizer builds a synthesizer. generator may be nil, in
// which case only the deterministic path runs.
func NewRiskSynthesizer(generator service.NarrativeGenerator, opts ...SynthesizerOption) *RiskSynthesizer {
	s := &RiskSynthesizer{generator: generator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type batchStats struct {
	total           int
	hazardousCount  int
	closestAU       float64
	closestName     string
	fastestKPS      float64
	largestDiameter float64
}

func collectStats(records []models.ApproachRecord) batchStats {
	st := batchStats{total: len(records), closestAU: math.Inf(1)}
	for _, r := range records {
		if r.Hazardous {
			st.hazardousCount++
		}
		if r.MissDistanceAU < st.closestAU {
			st.closestAU = r.MissDistanceAU
			st.closestName = r.Name
		}
		if r.VelocityKPS > st.fastestKPS {
			st.fastestKPS = r.VelocityKPS
		}
		if d := r.Diameter.Mean(); d > st.largestDiameter {
			st.largestDiameter = d
		}
	}
	return st
}

func (st batchStats) riskLevel() models.AggregateRiskLevel {
	switch {
	case st.hazardousCount > 5 || st.closestAU < 0.01:
		return models.AggregateRiskCritical
	case st.hazardousCount > 2 || st.closestAU < 0.05:
		return models.AggregateRiskHigh
	case st.hazardousCount > 0:
		return models.AggregateRiskMedium
	default:
		return models.AggregateRiskLow
	}
}

// Synthesize produces a risk analysis for a batch of approaches.
func (s *RiskSynthesizer) Synthesize(ctx context.Context, records []models.ApproachRecord) models.RiskAnalysis {
	start := time.Now()

	st := collectStats(records)
	level := st.riskLevel()

	analysis, recommendations := s.narrate(ctx, batchPrompt(st, level), func() string {
		return batchTemplate(st, level)
	})

	result := models.RiskAnalysis{
		Analysis:        analysis,
		RiskLevel:       level,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}
	s.observe("batch", st.closestName, level, time.Since(start))
	return result
}

// SynthesizeSingle produces a risk analysis for one object, using the
// richer orbital fields when the provider attached them.
func (s *RiskSynthesizer) SynthesizeSingle(ctx context.Context, record models.ApproachRecord) models.RiskAnalysis {
	start := time.Now()

	level := singleRiskLevel(record)

	analysis, recommendations := s.narrate(ctx, singlePrompt(record, level), func() string {
		return singleTemplate(record, level)
	})

	result := models.RiskAnalysis{
		Analysis:        analysis,
		RiskLevel:       level,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}
	s.observe("single", record.Name, level, time.Since(start))
	return result
}

func singleRiskLevel(r models.ApproachRecord) models.AggregateRiskLevel {
	isLarge := r.Diameter.Mean() > 1000
	isVeryClose := r.MissDistanceAU < 0.05

	switch {
	case r.Hazardous && isVeryClose && isLarge:
		return models.AggregateRiskCritical
	case r.Hazardous && (isVeryClose || isLarge):
		return models.AggregateRiskHigh
	case r.Hazardous || isVeryClose:
		return models.AggregateRiskMedium
	default:
		return models.AggregateRiskLow
	}
}

// narrate tries the generative path and degrades to the deterministic
// template on any failure.
func (s *RiskSynthesizer) narrate(ctx context.Context, prompt string, deterministic func() string) (string, []string) {
	if s.generator != nil {
		text, err := s.generator.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, extractRecommendations(text)
		}
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("risk narrative generation unavailable", logger.Error(err))
			}
			if s.metrics != nil {
				s.metrics.RecordError("narrative")
			}
		}
	}

	analysis := deterministic()
	return analysis, extractRecommendations(analysis)
}

func batchPrompt(st batchStats, level models.AggregateRiskLevel) string {
	var b strings.Builder
	b.WriteString("You are a planetary defense analyst. Write a short risk assessment of the following near-Earth object approaches.\n")
	fmt.Fprintf(&b, "Objects tracked: %d\n", st.total)
	fmt.Fprintf(&b, "Potentially hazardous: %d\n", st.hazardousCount)
	if st.total > 0 {
		fmt.Fprintf(&b, "Closest approach: %.4f AU (%s)\n", st.closestAU, st.closestName)
		fmt.Fprintf(&b, "Fastest object: %.2f km/s\n", st.fastestKPS)
		fmt.Fprintf(&b, "Largest estimated diameter: %.0f m\n", st.largestDiameter)
	}
	fmt.Fprintf(&b, "Overall risk level: %s\n", level)
	b.WriteString("End with 2-4 recommendations, each on its own line starting with \"- \".")
	return b.String()
}

func singlePrompt(r models.ApproachRecord, level models.AggregateRiskLevel) string {
	var b strings.Builder
	b.WriteString("You are a planetary defense analyst. Write a short risk assessment of one near-Earth object.\n")
	fmt.Fprintf(&b, "Object: %s\n", r.Name)
	fmt.Fprintf(&b, "Estimated diameter: %.0f-%.0f m\n", r.Diameter.Min, r.Diameter.Max)
	fmt.Fprintf(&b, "Relative velocity: %.2f km/s\n", r.VelocityKPS)
	fmt.Fprintf(&b, "Miss distance: %.4f AU\n", r.MissDistanceAU)
	fmt.Fprintf(&b, "Potentially hazardous: %t\n", r.Hazardous)
	if r.OrbitClass != "" {
		fmt.Fprintf(&b, "Orbit class: %s\n", r.OrbitClass)
	}
	if r.AbsoluteMagnitude != nil {
		fmt.Fprintf(&b, "Absolute magnitude: %.2f\n", *r.AbsoluteMagnitude)
	}
	if r.OrbitalPeriod != nil {
		fmt.Fprintf(&b, "Orbital period: %.2f years\n", *r.OrbitalPeriod)
	}
	if r.Eccentricity != nil {
		fmt.Fprintf(&b, "Eccentricity: %.3f\n", *r.Eccentricity)
	}
	if r.Inclination != nil {
		fmt.Fprintf(&b, "Inclination: %.2f deg\n", *r.Inclination)
	}
	fmt.Fprintf(&b, "Risk level: %s\n", level)
	b.WriteString("End with 2-4 recommendations, each on its own line starting with \"- \".")
	return b.String()
}

func batchTemplate(st batchStats, level models.AggregateRiskLevel) string {
	var b strings.Builder
	if st.total == 0 {
		b.WriteString("No close approaches in the requested set. Overall risk level: low.\n")
	} else {
		fmt.Fprintf(&b, "Tracking %d close approaches, %d flagged potentially hazardous. ", st.total, st.hazardousCount)
		fmt.Fprintf(&b, "The closest approach is %s at %.4f AU. ", st.closestName, st.closestAU)
		fmt.Fprintf(&b, "Fastest relative velocity is %.2f km/s and the largest estimated diameter is %.0f m. ", st.fastestKPS, st.largestDiameter)
		fmt.Fprintf(&b, "Overall risk level: %s.\n", level)
	}
	writeRecommendations(&b, level)
	return b.String()
}

func singleTemplate(r models.ApproachRecord, level models.AggregateRiskLevel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has an estimated diameter of %.0f-%.0f m and will pass at %.4f AU with a relative velocity of %.2f km/s. ",
		r.Name, r.Diameter.Min, r.Diameter.Max, r.MissDistanceAU, r.VelocityKPS)
	if r.Hazardous {
		b.WriteString("It is flagged as potentially hazardous. ")
	}
	if r.OrbitClass != "" {
		fmt.Fprintf(&b, "Its orbit is classified as %s. ", r.OrbitClass)
	}
	fmt.Fprintf(&b, "Risk level: %s.\n", level)
	writeRecommendations(&b, level)
	return b.String()
}

func writeRecommendations(b *strings.Builder, level models.AggregateRiskLevel) {
	for _, rec := range recommendationsFor(level) {
		b.WriteString("- ")
		b.WriteString(rec)
		b.WriteString("\n")
	}
}

func recommendationsFor(level models.AggregateRiskLevel) []string {
	switch level {
	case models.AggregateRiskCritical:
		return []string{
			"Escalate to continuous observation and refine orbit solutions immediately",
			"Notify planetary defense coordination channels",
			"Re-evaluate impact probability after each new observation arc",
		}
	case models.AggregateRiskHigh:
		return []string{
			"Increase observation cadence for the flagged objects",
			"Refine orbit solutions to narrow miss-distance uncertainty",
			"Review upcoming approach windows for the same objects",
		}
	case models.AggregateRiskMedium:
		return []string{
			"Keep the flagged objects on the routine observation schedule",
			"Recheck classifications when updated elements are published",
		}
	default:
		return []string{
			"Continue routine monitoring",
		}
	}
}

// extractRecommendations pulls list-marker lines out of narrative text.
// Absence of such lines yields an empty list.
func extractRecommendations(text string) []string {
	recs := make([]string, 0, 4)
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		item, ok := stripListMarker(line)
		if !ok || item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		recs = append(recs, item)
	}
	return recs
}

func stripListMarker(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}

	// Numbered markers: "1." or "1)" followed by the item.
	for i, r := range line {
		if r >= '0' && r <= '9' {
			continue
		}
		if i > 0 && (r == '.' || r == ')') {
			return strings.TrimSpace(line[i+1:]), true
		}
		break
	}
	return "", false
}

func (s *RiskSynthesizer) observe(scope, object string, level models.AggregateRiskLevel, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordRiskLevel(scope, string(level))
		s.metrics.RecordLatency("risk_"+scope, elapsed.Seconds())
	}
	if s.auditor != nil {
		s.auditor.Submit(&models.AuditEvent{
			ID:        uuid.NewString(),
			Kind:      "risk",
			Object:    object,
			RiskLevel: string(level),
			At:        time.Now().UTC(),
		})
	}
}
