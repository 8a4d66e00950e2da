// Package config loads SMS Shield settings.
//
// # Overview
//
// The only required setting is the classification endpoint. Everything else
// has a default so the client works with nothing but an environment
// variable:
//
//	SMSSHIELD_ENDPOINT=http://127.0.0.1:5001/predict smsshield
//
// # Resolution Order
//
// Each key is resolved independently, highest precedence first:
//
//  1. Command-line flag, when explicitly set (--endpoint, --timeout, --log-file)
//  2. Environment variable with the SMSSHIELD_ prefix
//  3. TOML config file (--config path, or ~/.config/smsshield/config.toml)
//  4. Built-in default
//
// SMSSHIELD_BACKEND_URL is accepted as an alias for SMSSHIELD_ENDPOINT.
//
// # Default Values
//
//   - Config file: ~/.config/smsshield/config.toml
//   - Endpoint: none (the client refuses to start without one)
//   - Timeout: 10s
//   - Log file: ~/.local/state/smsshield/smsshield.log
//
// # TOML Format
//
//	endpoint = "http://127.0.0.1:5001/predict"
//	timeout = "10s"        # or an integer number of seconds
//	log_file = "~/.local/state/smsshield/smsshield.log"
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - TOML parsing errors
//   - Timeouts that do not parse or are not positive
//
// A missing config file is NOT an error. The endpoint is not validated here;
// the classify package rejects an empty or unparsable endpoint.
package config
