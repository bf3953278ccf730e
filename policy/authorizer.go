package policy

import (
	"context"
	_ "embed"
	"fmt"
	"github.com/open-policy-agent/opa/rego"
)

//go:embed authz.rego
var authzModule string

const authzQuery = "data.railway.authz.allow"

// Authorizer decides whether an actor may use a method on a kind of resource.
// It does not filter rows: ownership is applied by the order and ticket queries.
type Authorizer struct {
	query rego.PreparedEvalQuery
}

func NewAuthorizer(ctx context.Context) (*Authorizer, error) {
	query, err := rego.New(
		rego.Query(authzQuery),
		rego.Module("authz.rego", authzModule),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("preparing access policy: %w", err)
	}
	return &Authorizer{query: query}, nil
}

func (authorizer *Authorizer) Allow(ctx context.Context, actor Actor, method string, resource Resource) (bool, error) {
	input := map[string]interface{}{
		"actor": map[string]interface{}{
			"authenticated": actor.Authenticated,
			"admin":         actor.Admin,
		},
		"method":   method,
		"resource": string(resource),
	}

	results, err := authorizer.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("evaluating access policy: %w", err)
	}
	return results.Allowed(), nil
}

// Authorize returns ErrUnauthenticated or ErrForbidden when the request is refused
func (authorizer *Authorizer) Authorize(ctx context.Context, actor Actor, method string, resource Resource) error {
	allowed, err := authorizer.Allow(ctx, actor, method, resource)
	if err != nil {
		return err
	}
	if allowed {
		return nil
	}
	if !actor.Authenticated {
		return ErrUnauthenticated
	}
	return ErrForbidden
}
