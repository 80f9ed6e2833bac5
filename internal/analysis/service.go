package analysis

import (
	"context"
	"errors"

	"accessibility-backend/internal/llm"
	"accessibility-backend/internal/personas"
	"accessibility-backend/internal/reports"
	"accessibility-backend/internal/shared/telemetry"
)

// Service performs accessibility analyses. It is read-only after
// construction and safe for concurrent use.
type Service struct {
	LLM     llm.Client
	Reports *reports.Store // optional; nil disables report persistence
}

// Analyze derives the accessibility profile for a category. Upstream call
// failures and malformed payloads are masked by the fallback profile, so the
// only errors that escape are a missing provider configuration and context
// cancellation. Callers never see a "no profile" case otherwise.
func (s *Service) Analyze(ctx context.Context, category personas.Category) (Profile, error) {
	prompt, err := BuildPrompt(category)
	if err != nil {
		// Catalog serialization cannot realistically fail; treat it like any
		// other upstream defect rather than surfacing it.
		telemetry.Error("analysis.prompt_failed", map[string]any{
			"disability_type": string(category),
			"error":           err.Error(),
		})
		return s.finish(ctx, fallbackProfile(category)), nil
	}

	raw, err := s.LLM.Complete(ctx, llm.CompletionInput{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return Profile{}, err
		}
		if ctx.Err() != nil {
			return Profile{}, ctx.Err()
		}
		telemetry.Error("analysis.llm_failed", map[string]any{
			"disability_type": string(category),
			"error":           err.Error(),
		})
		return s.finish(ctx, fallbackProfile(category)), nil
	}

	profile, err := parseProfile(raw, category)
	if err != nil {
		telemetry.Error("analysis.parse_failed", map[string]any{
			"disability_type": string(category),
			"error":           err.Error(),
		})
		return s.finish(ctx, fallbackProfile(category)), nil
	}

	return s.finish(ctx, profile), nil
}

// finish persists the profile report when a store is configured. Persistence
// is best-effort and never affects the analysis result.
func (s *Service) finish(ctx context.Context, profile Profile) Profile {
	if s.Reports == nil {
		return profile
	}
	path, err := s.Reports.Save(ctx, string(profile.DisabilityType), profile)
	if err != nil {
		telemetry.Error("analysis.report_save_failed", map[string]any{
			"disability_type": string(profile.DisabilityType),
			"error":           err.Error(),
		})
		return profile
	}
	telemetry.Info("analysis.report_saved", map[string]any{
		"disability_type": string(profile.DisabilityType),
		"path":            path,
	})
	return profile
}
