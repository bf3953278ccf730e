package policy

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"railway-booking-server/model"
	"testing"
)

var (
	anonymous = Actor{}
	customer  = NewActor(1, false)
	admin     = NewActor(2, true)
)

func newTestAuthorizer(t *testing.T) *Authorizer {
	authorizer, err := NewAuthorizer(context.Background())
	require.NoError(t, err)
	return authorizer
}

func TestIsSafeMethod(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		assert.True(t, IsSafeMethod(method), method)
	}
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		assert.False(t, IsSafeMethod(method), method)
	}
}

func TestCanViewOrder(t *testing.T) {
	order := model.Order{UserID: 1}

	assert.True(t, CanViewOrder(customer, order))
	assert.False(t, CanViewOrder(admin, order))
	assert.False(t, CanViewOrder(anonymous, order))
	// the zero user id must not match an anonymous actor
	assert.False(t, CanViewOrder(anonymous, model.Order{}))
}

func TestCanMutateReferenceData(t *testing.T) {
	assert.False(t, CanMutateReferenceData(anonymous))
	assert.False(t, CanMutateReferenceData(customer))
	assert.True(t, CanMutateReferenceData(admin))
	// an admin claim without authentication is not trusted
	assert.False(t, CanMutateReferenceData(Actor{Admin: true}))
}

func TestAuthorizerDecisionTable(t *testing.T) {
	authorizer := newTestAuthorizer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    Actor
		method   string
		resource Resource
		allowed  bool
	}{
		{"anonymous read reference", anonymous, http.MethodGet, ResourceReference, false},
		{"anonymous create order", anonymous, http.MethodPost, ResourceOrder, false},
		{"customer read reference", customer, http.MethodGet, ResourceReference, true},
		{"customer create reference", customer, http.MethodPost, ResourceReference, false},
		{"customer delete reference", customer, http.MethodDelete, ResourceReference, false},
		{"customer read orders", customer, http.MethodGet, ResourceOrder, true},
		{"customer create order", customer, http.MethodPost, ResourceOrder, true},
		{"customer delete order", customer, http.MethodDelete, ResourceOrder, true},
		{"customer update order", customer, http.MethodPut, ResourceOrder, false},
		{"customer read tickets", customer, http.MethodGet, ResourceTicket, true},
		{"customer create ticket", customer, http.MethodPost, ResourceTicket, false},
		{"admin create reference", admin, http.MethodPost, ResourceReference, true},
		{"admin delete reference", admin, http.MethodDelete, ResourceReference, true},
		{"admin update order", admin, http.MethodPatch, ResourceOrder, true},
		{"unauthenticated admin claim", Actor{Admin: true}, http.MethodPost, ResourceReference, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := authorizer.Allow(ctx, tt.actor, tt.method, tt.resource)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestAuthorizerAgreesWithPredicates(t *testing.T) {
	authorizer := newTestAuthorizer(t)
	ctx := context.Background()
	methods := []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	for _, actor := range []Actor{anonymous, customer, admin} {
		for _, method := range methods {
			allowed, err := authorizer.Allow(ctx, actor, method, ResourceReference)
			require.NoError(t, err)

			expected := actor.Authenticated && (IsSafeMethod(method) || CanMutateReferenceData(actor))
			assert.Equal(t, expected, allowed, "actor %+v method %s", actor, method)
		}
	}
}

func TestAuthorize(t *testing.T) {
	authorizer := newTestAuthorizer(t)
	ctx := context.Background()

	err := authorizer.Authorize(ctx, anonymous, http.MethodGet, ResourceOrder)
	assert.True(t, errors.Is(err, ErrUnauthenticated))

	err = authorizer.Authorize(ctx, customer, http.MethodPost, ResourceReference)
	assert.True(t, errors.Is(err, ErrForbidden))

	assert.NoError(t, authorizer.Authorize(ctx, customer, http.MethodPost, ResourceOrder))
}
