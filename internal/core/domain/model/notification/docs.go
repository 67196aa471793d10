// Package notification implements the notification aggregate: a record
// informing one or more actors of an event, with independent read-state.
//
// Visibility is fixed at creation as a Recipient value object, either a
// specific user identity or the global marker every actor can see. The only
// mutation a notification supports is the forward-only read transition.
package notification
