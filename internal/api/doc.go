// Package api contains the HTTP handlers for the authentication and Bible
// endpoints, plus their request and response types. Handlers translate
// between the wire envelopes and the services in internal/service and
// internal/bible.
package api
