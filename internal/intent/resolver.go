package intent

import (
	"context"

	"taskbuster/pkg/hfinference"
	pkgLog "taskbuster/pkg/log"
)

// DefaultConfidenceThreshold is the minimum top score required to trust the
// remote classifier over the keyword fallback. It is a tunable policy
// constant, not an invariant; override it via config.
const DefaultConfidenceThreshold = 0.35

// Resolver turns a free-text task description into exactly one resolution.
// The remote zero-shot classifier is the higher-precision signal; the keyword
// scorer is the deterministic fallback when the classifier is absent, slow,
// low-confidence or malformed.
type Resolver struct {
	l          pkgLog.Logger
	classifier hfinference.IInference
	threshold  float64
}

// NewResolver creates a resolver. A threshold <= 0 selects the default.
func NewResolver(l pkgLog.Logger, classifier hfinference.IInference, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Resolver{
		l:          l,
		classifier: classifier,
		threshold:  threshold,
	}
}

// Resolve never fails: classifier errors degrade to the keyword fallback, and
// a fallback miss yields the Unresolved outcome.
func (r *Resolver) Resolve(ctx context.Context, description string) Resolution {
	if res, ok := r.resolveRemote(ctx, description); ok {
		return res
	}

	if candidate, ok := ScoreKeywords(description); ok {
		r.l.Infof(ctx, "resolver: keyword fallback selected intent %q", candidate)
		return Resolution{Intent: candidate, Source: SourceKeyword}
	}

	r.l.Warnf(ctx, "resolver: no intent resolved for task %q", description)
	return Unresolved
}

// resolveRemote asks the zero-shot classifier for a confident candidate.
// Any failure or malformed result is "no remote signal", never an error.
func (r *Resolver) resolveRemote(ctx context.Context, description string) (Resolution, bool) {
	result, err := r.classifier.ZeroShotClassification(ctx, description, Labels())
	if err != nil {
		r.l.Errorf(ctx, "resolver: classification failed, falling back to keywords: %v", err)
		return Resolution{}, false
	}

	// Trust nothing until the label/score pairing is verified.
	if result == nil || len(result.Labels) == 0 || len(result.Labels) != len(result.Scores) {
		r.l.Warnf(ctx, "resolver: malformed classification result, falling back to keywords")
		return Resolution{}, false
	}

	// First occurrence at the maximum score wins.
	maxIndex := 0
	for i, score := range result.Scores {
		if score > result.Scores[maxIndex] {
			maxIndex = i
		}
	}

	maxScore := result.Scores[maxIndex]
	if maxScore <= r.threshold {
		r.l.Infof(ctx, "resolver: top score %.3f below threshold %.3f", maxScore, r.threshold)
		return Resolution{}, false
	}

	label := result.Labels[maxIndex]
	if !Known(label) {
		r.l.Warnf(ctx, "resolver: classifier returned label %q outside the intent set", label)
		return Resolution{}, false
	}

	r.l.Infof(ctx, "resolver: remote classification selected intent %q score=%.3f", label, maxScore)
	return Resolution{Intent: Intent(label), Source: SourceRemote}, true
}
