// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities so the API controls what is exposed:
// passwords never leave the server, and money crosses the wire in the units
// each endpoint documents.
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateUserRequest)
//   - Query types: <Resource><Purpose>Query, bound from the URL query string
//   - Response types: <Resource>Response (e.g., UserResponse)
package dto
