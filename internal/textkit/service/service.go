package service

import (
	"context"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
	coreGrpc "github.com/msto63/textkit/pkg/core/grpc"
	"github.com/msto63/textkit/pkg/core/logging"
)

// TokenizeRequest holds tokenizer input; nil options take the configured
// defaults
type TokenizeRequest struct {
	Text              *string
	Delimiters        *string
	TrimTokens        *bool
	IgnoreEmptyTokens *bool
}

// Config holds service configuration
type Config struct {
	Text   config.TextConfig
	Logger *logging.Logger
}

// Service applies the configured text defaults and delegates to stringx
type Service struct {
	text   config.TextConfig
	rule   stringx.CaseRule
	logger *logging.Logger
}

// NewService creates a new text service. An unknown case rule in the
// configuration is rejected.
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("textkit")
	}

	rule := stringx.CaseUnicode
	if cfg.Text.CaseRule != "" {
		parsed, err := stringx.ParseCaseRule(cfg.Text.CaseRule)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to create service").
				WithCode(mdwerror.CodeServiceInitialization).
				WithOperation("service.NewService")
		}
		rule = parsed
	}

	text := cfg.Text
	if text.Delimiters == "" {
		text.Delimiters = config.DefaultDelimiters
	}

	return &Service{
		text:   text,
		rule:   rule,
		logger: logger,
	}, nil
}

// CaseRule returns the default case rule
func (s *Service) CaseRule() stringx.CaseRule { return s.rule }

// TextConfig returns the effective text defaults
func (s *Service) TextConfig() config.TextConfig { return s.text }

// IsEmpty reports whether text is absent, empty or whitespace only
func (s *Service) IsEmpty(ctx context.Context, text *string) bool {
	timer := s.loggerFor(ctx).StartTimer("IsEmpty")
	defer timer.Stop()

	return stringx.IsEmpty(stringx.OrEmpty(text))
}

// UpperFirst upper-cases the first rune of text. An empty rule name selects
// the configured rule.
func (s *Service) UpperFirst(ctx context.Context, text *string, rule string) (string, error) {
	return s.mapFirst(ctx, "UpperFirst", text, rule, stringx.UpperFirstWith)
}

// LowerFirst lower-cases the first rune of text. An empty rule name selects
// the configured rule.
func (s *Service) LowerFirst(ctx context.Context, text *string, rule string) (string, error) {
	return s.mapFirst(ctx, "LowerFirst", text, rule, stringx.LowerFirstWith)
}

func (s *Service) mapFirst(ctx context.Context, op string, text *string, name string, fn func(string, stringx.CaseRule) string) (string, error) {
	logger := s.loggerFor(ctx)
	timer := logger.StartTimer(op)

	rule, err := s.resolveRule(name)
	if err != nil {
		timer.StopWithError(err)
		return "", err
	}

	result := fn(stringx.OrEmpty(text), rule)
	timer.Stop(mdwlog.Field("case_rule", rule.String()))
	return result, nil
}

func (s *Service) resolveRule(name string) (stringx.CaseRule, error) {
	if name == "" {
		return s.rule, nil
	}
	return stringx.ParseCaseRule(name)
}

// StandardURLPattern strips one leading "/" from url. A nil url fails with
// INVALID_ARGUMENT.
func (s *Service) StandardURLPattern(ctx context.Context, url *string) (string, error) {
	logger := s.loggerFor(ctx)
	timer := logger.StartTimer("StandardURLPattern")

	result, err := stringx.StandardURLPatternOf(url)
	if err != nil {
		timer.StopWithError(err)
		return "", err
	}

	timer.Stop()
	return result, nil
}

// StandardURLPatterns strips one leading "/" from every url. A nil slice
// fails with INVALID_ARGUMENT.
func (s *Service) StandardURLPatterns(ctx context.Context, urls []string) ([]string, error) {
	logger := s.loggerFor(ctx)
	timer := logger.StartTimer("StandardURLPatterns")

	results, err := stringx.StandardURLPatterns(urls)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Stop(mdwlog.Field("count", len(results)))
	return results, nil
}

// Tokenize splits the request text. A nil text yields a nil result.
func (s *Service) Tokenize(ctx context.Context, req TokenizeRequest) []string {
	timer := s.loggerFor(ctx).StartTimer("Tokenize")

	delimiters := s.text.Delimiters
	if req.Delimiters != nil {
		delimiters = *req.Delimiters
	}
	trim := s.text.ShouldTrimTokens()
	if req.TrimTokens != nil {
		trim = *req.TrimTokens
	}
	ignore := s.text.ShouldIgnoreEmptyTokens()
	if req.IgnoreEmptyTokens != nil {
		ignore = *req.IgnoreEmptyTokens
	}

	tokens := stringx.TokenizeNullable(req.Text, delimiters, trim, ignore)
	timer.Stop(mdwlog.Fields{
		"tokens":      len(tokens),
		"trim":        trim,
		"ignoreEmpty": ignore,
	})
	return tokens
}

// ToStringArray copies values. A nil slice yields nil.
func (s *Service) ToStringArray(ctx context.Context, values []string) []string {
	timer := s.loggerFor(ctx).StartTimer("ToStringArray")
	defer timer.Stop()

	return stringx.ToStringArray(values)
}

// loggerFor binds the request id carried by ctx, if any
func (s *Service) loggerFor(ctx context.Context) *mdwlog.Logger {
	if reqID := coreGrpc.GetRequestID(ctx); reqID != "" {
		return s.logger.WithRequestID(reqID)
	}
	return s.logger.Logger
}
