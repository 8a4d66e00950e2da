// Package classify provides an HTTP client for the remote SMS classification service.
//
// # Overview
//
// The classification algorithm lives behind a single HTTP endpoint. This
// package treats it as an opaque black box: it posts the message text and
// decodes a binary verdict. Nothing here knows how the verdict is produced.
//
// # Wire Contract
//
// Request:
//
//	POST <endpoint>
//	Content-Type: application/json
//	X-Request-ID: <uuid>   (when the context carries one)
//
//	{"text": "<raw message, untrimmed>"}
//
// Response:
//
//	{"isSpam": true}
//
// Extra fields are ignored. The reference backend replies with
// {"prediction": 1} instead, so a body carrying only prediction (0 or 1) is
// accepted too.
//
// # Endpoint
//
// The endpoint comes from configuration and is used as-is as the POST
// target. Only a missing scheme is filled in (http://). Ping issues a GET
// against the endpoint's origin, which the reference backend answers with a
// liveness message.
//
// # Error Handling
//
// Classify returns wrapped errors for:
//   - Request construction failures
//   - Network errors: connection refused, timeout, DNS failure
//   - HTTP status >= 400
//   - Bodies that do not decode into a verdict (ErrMalformedResponse)
//
// Callers in this repository collapse all of these into a single failed
// outcome; the distinction exists only for logs.
package classify
