package commands_test

import (
	"testing"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func testDates() (time.Time, time.Time) {
	departure := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)
	return departure, ret
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	a := testActor(t, actor.RoleUser)
	departure, ret := testDates()

	cmd, err := commands.NewCreateOrderCommand(a, "Ana", "Lisbon", departure, ret, "Offsite", "")

	require.NoError(t, err)
	assert.Equal(t, "Ana", cmd.RequesterName())
	assert.Equal(t, "Lisbon", cmd.Destination())
	assert.Equal(t, departure, cmd.DepartureDate())
	assert.Equal(t, ret, cmd.ReturnDate())
	assert.Equal(t, "Offsite", cmd.Description())
	assert.Equal(t, a, cmd.Actor())
}

func TestNewCreateOrderCommand_DefaultsToPending(t *testing.T) {
	a := testActor(t, actor.RoleUser)
	departure, ret := testDates()

	cmd, err := commands.NewCreateOrderCommand(a, "Ana", "Lisbon", departure, ret, "", "")

	require.NoError(t, err)
	assert.Equal(t, order.Pending, cmd.InitialStatus())
}

func TestNewCreateOrderCommand_NormalizesAliases(t *testing.T) {
	a := testActor(t, actor.RoleUser)
	departure, ret := testDates()

	cases := map[string]order.Status{
		"aprovado":     order.Approved,
		"solicitado":   order.Pending,
		"cancelado":    order.Cancelled,
		"em_andamento": order.InProgress,
		"approved":     order.Approved,
	}

	for input, expected := range cases {
		cmd, err := commands.NewCreateOrderCommand(a, "Ana", "Lisbon", departure, ret, "", input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, cmd.InitialStatus(), "input %q", input)
	}
}

func TestNewCreateOrderCommand_InvalidStatus(t *testing.T) {
	a := testActor(t, actor.RoleUser)
	departure, ret := testDates()

	_, err := commands.NewCreateOrderCommand(a, "Ana", "Lisbon", departure, ret, "", "shipped")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_MissingRequiredFields(t *testing.T) {
	a := testActor(t, actor.RoleUser)
	departure, ret := testDates()

	_, err := commands.NewCreateOrderCommand(a, "", "", departure, ret, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "requesterName")
	assert.Contains(t, err.Error(), "destination")
}

func TestNewCreateOrderCommand_ZeroDates(t *testing.T) {
	a := testActor(t, actor.RoleUser)

	_, err := commands.NewCreateOrderCommand(a, "Ana", "Lisbon", time.Time{}, time.Time{}, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	var invalid actor.Actor
	departure, ret := testDates()

	_, err := commands.NewCreateOrderCommand(invalid, "Ana", "Lisbon", departure, ret, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}
