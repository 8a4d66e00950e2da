// Package state holds the session state that drives what SMS Shield renders.
//
// # Overview
//
// Two independent state holders live here:
//
//   - Controller: the classification request lifecycle (input buffer,
//     request status, last outcome)
//   - Navigation: the active view and the compact menu flag
//
// Health, a third and unrelated record, holds the result of the latest
// backend reachability check for the footer indicator.
//
// Both are owned by the UI model (or the one-shot CLI) and passed by
// reference; there is no package-level state.
//
// # Request Lifecycle
//
//	Idle/None        --Begin(non-blank)-->       InFlight/None
//	InFlight/*       --Complete, verdict-->      Idle/Classified{IsSpam}
//	InFlight/*       --Complete, any error-->    Idle/Failed
//	Idle/*           --Begin(blank)-->           unchanged, ErrEmptyInput
//
// Idle/Classified and Idle/Failed re-enter through InFlight on the next
// Begin. Only the latest outcome is kept.
//
// Begin is synchronous so the UI can render the in-flight state before the
// network call starts. Complete performs the call and is meant to run off the
// event loop (as a tea.Cmd). Submit chains the two for callers that can block.
//
// # Concurrency Model
//
// The Controller uses a readers-writer lock, like a snapshot store:
//
//   - Begin/Complete/SetInput: write lock, held only while fields change
//   - Snapshot: read lock, returns a copy
//
// The outcome write and the InFlight to Idle transition happen under one
// lock acquisition, so no Snapshot ever pairs InFlight with a new outcome or
// Idle with a stale one. The lock is never held across the network call.
//
// Only one request can be outstanding. The UI disables the submit affordance
// while InFlight; Begin also refuses with ErrInFlight so other callers get the
// same guarantee.
//
// # Navigation
//
// Navigation is a plain value with pure transitions. It is only touched from
// the UI event loop and needs no locking.
package state
