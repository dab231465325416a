package service

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/L-P/mme/internal/errors"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// QueryServiceOptions groups dependencies for QueryService.
type QueryServiceOptions struct {
	Evaluator JMESPathEvaluator // Optional: defaults to go-jmespath
}

// QueryService filters API list responses with a JMESPath expression, e.g.
// "[?Type=='scene'].Name".
type QueryService struct {
	jems JMESPathEvaluator
}

// NewQueryService constructs a new QueryService.
func NewQueryService(opts QueryServiceOptions) *QueryService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &QueryService{jems: jems}
}

// Apply evaluates query against the JSON form of data. An empty query returns
// data untouched. Invalid expressions are validation errors on field "query".
func (s *QueryService) Apply(query string, data any) (any, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return data, nil
	}

	if err := s.jems.Validate(query); err != nil {
		return nil, apperrors.ValidationField("query", fmt.Sprintf("invalid JMESPath expression: %v", err))
	}

	doc, err := toJSONValue(data)
	if err != nil {
		return nil, fmt.Errorf("prepare query input: %w", err)
	}

	out, err := s.jems.Evaluate(query, doc)
	if err != nil {
		return nil, apperrors.ValidationField("query", fmt.Sprintf("query failed: %v", err))
	}
	return out, nil
}

// toJSONValue converts data to the maps and slices JMESPath walks, using the
// same field names the API encodes.
func toJSONValue(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
