// Package services contains stateless domain services that coordinate logic
// spanning aggregates without belonging to any single one.
//
// NotificationCatalog is the pure mapping from an order status change to the
// title, message and type of the notification announcing it.
package services
