// Package order implements the travel-order aggregate and its lifecycle
// state machine.
//
// An Order moves through four states (pending, approved, cancelled,
// in_progress). The initial state is pending; there is no terminal state and
// no history beyond the current value. Exactly one transition is forbidden:
// an approved order can never be cancelled, for any actor. Detail fields are
// editable only while the order is pending, and only by its owner or an
// administrator.
//
// Creation additionally accepts a legacy localized status vocabulary
// (StatusFromAlias); transitions accept canonical codes only
// (StatusFromString). Normalization happens at the boundary, so the aggregate
// only ever holds canonical statuses.
package order
