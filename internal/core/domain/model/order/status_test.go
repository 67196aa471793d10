package order_test

import (
	"fmt"
	"testing"

	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Approved,
			order.Cancelled,
			order.InProgress,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return canonical wire codes", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "approved", order.Approved.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
		assert.Equal(t, "in_progress", order.InProgress.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatus_Label(t *testing.T) {
	t.Run("should return human-readable labels", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.Label())
		assert.Equal(t, "Approved", order.Approved.Label())
		assert.Equal(t, "Cancelled", order.Cancelled.Label())
		assert.Equal(t, "In Progress", order.InProgress.Label())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse canonical codes", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":     order.Pending,
			"approved":    order.Approved,
			"cancelled":   order.Cancelled,
			"in_progress": order.InProgress,
		}

		for code, expected := range cases {
			status, err := order.StatusFromString(code)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject aliases", func(t *testing.T) {
		_, err := order.StatusFromString("solicitado")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown codes", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromAlias(t *testing.T) {
	t.Run("should normalize legacy aliases to canonical statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"solicitado":   order.Pending,
			"aprovado":     order.Approved,
			"cancelado":    order.Cancelled,
			"em_andamento": order.InProgress,
		}

		for alias, expected := range cases {
			status, err := order.StatusFromAlias(alias)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should accept canonical codes too", func(t *testing.T) {
		status, err := order.StatusFromAlias("approved")

		require.NoError(t, err)
		assert.Equal(t, order.Approved, status)
	})

	t.Run("should reject unknown vocabulary", func(t *testing.T) {
		_, err := order.StatusFromAlias("aprovada")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should forbid cancelling an approved order", func(t *testing.T) {
		err := order.Approved.CanTransitionTo(order.Cancelled)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "cannot cancel an already-approved order")
	})

	t.Run("should permit every other transition between valid statuses", func(t *testing.T) {
		valid := []order.Status{order.Pending, order.Approved, order.Cancelled, order.InProgress}

		for _, from := range valid {
			for _, to := range valid {
				if from == order.Approved && to == order.Cancelled {
					continue
				}

				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					require.NoError(t, from.CanTransitionTo(to))
				})
			}
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		err := order.Pending.CanTransitionTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should return the new status on a permitted transition", func(t *testing.T) {
		status, err := order.Pending.TransitionTo(order.Approved)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, status)
	})

	t.Run("should allow cancelling from in_progress", func(t *testing.T) {
		status, err := order.InProgress.TransitionTo(order.Cancelled)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, status)
	})

	t.Run("should fail on the forbidden edge", func(t *testing.T) {
		_, err := order.Approved.TransitionTo(order.Cancelled)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}
