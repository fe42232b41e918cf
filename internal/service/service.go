// Package service orchestrates the schema bridge, the analyzer, and the
// result projections behind one stateless call surface.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/internal/classify"
	"github.com/kqlkit/kql-language-tools/internal/complete"
	"github.com/kqlkit/kql-language-tools/internal/schema"
	"github.com/kqlkit/kql-language-tools/internal/symbols"
	"github.com/kqlkit/kql-language-tools/internal/validate"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// warmUpQuery is parsed once at init time to force the analyzer's static
// initialization before the first real call.
const warmUpQuery = "T | take 1"

// Service exposes validation, classification and completion over one
// analyzer. Each call builds its own symbol universe and owns its result
// structures; the only shared state is the immutable default built-in
// set, so a Service is safe for concurrent use as long as the analyzer
// is.
type Service struct {
	analyzer analyzer.Analyzer
	logger   *zap.Logger
}

// New creates a service over the given analyzer.
func New(a analyzer.Analyzer, logger *zap.Logger) *Service {
	return &Service{
		analyzer: a,
		logger:   logger.With(zap.String("component", "service")),
	}
}

// WarmUp runs a throwaway parse so that first-call latency and init
// failures surface at startup.
func (s *Service) WarmUp(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analyzer warm-up panicked: %v", r)
		}
	}()
	_, err = s.analyzer.Parse(ctx, warmUpQuery)
	return err
}

// ValidateSyntax checks a query for syntax issues only. It always
// returns a structured result: a hard analyzer failure becomes a single
// synthetic error diagnostic at offset 0.
func (s *Service) ValidateSyntax(ctx context.Context, query string) (result *kql.ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Analyzer panicked during syntax validation", zap.Any("panic", r))
			result = validate.FailureResult(fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	res, err := s.analyzer.Parse(ctx, query)
	if err != nil {
		return validate.FailureResult(err.Error())
	}
	return validate.BuildResult(query, res.Diagnostics)
}

// ValidateWithSchema checks a query against a schema description. The
// symbol universe is built fresh from the schema for this call only.
func (s *Service) ValidateWithSchema(ctx context.Context, query string, sch *kql.Schema) (result *kql.ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Analyzer panicked during schema validation", zap.Any("panic", r))
			result = validate.FailureResult(fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	if err := s.requireCapability(analyzer.CapabilitySchemaValidation); err != nil {
		return validate.FailureResult(err.Error())
	}

	res, err := s.analyzer.Analyze(ctx, query, schema.BuildGlobals(sch))
	if err != nil {
		return validate.FailureResult(err.Error())
	}
	return validate.BuildResult(query, res.Diagnostics)
}

// GetClassifications returns highlighting spans for a query. Any failure
// yields an empty list: classification is advisory and its silence is
// safe.
func (s *Service) GetClassifications(ctx context.Context, query string) (spans []kql.ClassifiedSpan) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Analyzer panicked during classification", zap.Any("panic", r))
			spans = nil
		}
	}()

	if err := s.requireCapability(analyzer.CapabilityClassification); err != nil {
		s.logger.Warn("Classification unavailable", zap.Error(err))
		return nil
	}

	globals := symbols.Default()
	res, err := s.analyzer.Analyze(ctx, query, globals)
	if err != nil {
		s.logger.Warn("Classification failed", zap.Error(err))
		return nil
	}
	return classify.Classify(res.Root, globals)
}

// GetCompletions returns suggestions at a cursor position, schema-aware
// when a schema is supplied. Completions are best-effort: any failure
// yields an empty list.
func (s *Service) GetCompletions(ctx context.Context, query string, cursor int, sch *kql.Schema) (items []kql.CompletionItem) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Analyzer panicked during completion", zap.Any("panic", r))
			items = nil
		}
	}()

	if err := s.requireCapability(analyzer.CapabilityCompletion); err != nil {
		s.logger.Warn("Completion unavailable", zap.Error(err))
		return nil
	}

	globals := symbols.Default()
	if sch != nil {
		globals = schema.BuildGlobals(sch)
	}

	resp, err := s.analyzer.Complete(ctx, query, cursor, globals)
	if err != nil {
		s.logger.Warn("Completion failed", zap.Error(err))
		return nil
	}
	return complete.Normalize(resp)
}

func (s *Service) requireCapability(capability string) error {
	for _, c := range s.analyzer.Capabilities() {
		if c == capability {
			return nil
		}
	}
	return &analyzer.CapabilityError{Capability: capability}
}
