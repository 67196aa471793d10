package queries_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	a := queryActor(t, actor.RoleUser)

	query, err := queries.NewGetOrdersQuery(a, "")

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, a, query.Actor())

	_, hasFilter := query.StatusFilter()
	assert.False(t, hasFilter)
}

func TestNewGetOrdersQuery_WithStatusFilter(t *testing.T) {
	a := queryActor(t, actor.RoleUser)

	query, err := queries.NewGetOrdersQuery(a, "approved")

	require.NoError(t, err)
	status, hasFilter := query.StatusFilter()
	assert.True(t, hasFilter)
	assert.Equal(t, order.Approved, status)
}

func TestNewGetOrdersQuery_InvalidStatusFilter(t *testing.T) {
	a := queryActor(t, actor.RoleUser)

	_, err := queries.NewGetOrdersQuery(a, "shipped")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrdersQuery_AliasFilterIsRejected(t *testing.T) {
	a := queryActor(t, actor.RoleUser)

	_, err := queries.NewGetOrdersQuery(a, "aprovado")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrdersQuery_InvalidActor(t *testing.T) {
	var invalid actor.Actor

	_, err := queries.NewGetOrdersQuery(invalid, "")

	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
