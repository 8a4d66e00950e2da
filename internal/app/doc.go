// Package app wires configuration, the classification client, state and the
// UI into the SMS Shield application.
//
// # Overview
//
// This package is the composition root. Commands in internal/cli load
// configuration and logging, then hand an Options value to one of:
//
//   - Run: the interactive TUI
//   - Classify: a single classification for scripting
//   - CheckHealth: a single reachability check
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> classify.NewClient()    HTTP client for the backend
//	       ├─────> prefs.Load()            Theme and layout
//	       ├─────> state.NewController()   Request lifecycle
//	       ├─────> StartPoller()           Backend reachability
//	       └─────> ui.Run()                Start TUI (blocks)
//
// # Health Polling
//
// The poller pings the backend origin as soon as it starts, which doubles as
// the startup preflight, then every 30 seconds. Consecutive failures double
// the delay up to five minutes. Results only drive the footer indicator and
// the log; a failed check never blocks startup and classification requests
// are never retried.
//
// # Error Handling
//
// Only an unusable endpoint is fatal. Everything that can go wrong with a
// request surfaces as a failed outcome through state.Controller.
package app
