// Package domain contains the core entities of the application and their
// validation rules, independent of storage and transport concerns.
package domain
