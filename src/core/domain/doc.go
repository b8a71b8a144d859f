// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: users, properties, reservations and property reviews
//   - Value objects: PropertyFilter and the insert payloads NewUser/NewProperty
//   - Domain errors: not-found, conflict, validation and query failures
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Monetary amounts are stored in minor units (cents). Callers express price
// filters and new-property prices in whole units; see ToMinorUnits.
package domain
