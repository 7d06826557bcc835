// Package config assembles the chat sync client's configuration from three
// sources and validates the result.
//
// Priority order, highest first:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// An earlier source wins for fields it sets; later sources only fill the
// remaining zero fields. [GetStructuredConfig] returns the raw merged form,
// [GetClientConfig] the validated view the client runtime consumes.
package config
