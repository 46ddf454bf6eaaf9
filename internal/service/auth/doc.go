// Package auth provides password hashing and the credential service that
// backs registration, login and API-key issuance.
package auth
