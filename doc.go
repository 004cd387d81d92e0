// Package miit holds the core domain of the freight terminal backend:
// authentication primitives (JWT issuance and verification, bcrypt password
// handling, the login/refresh flows), the persisted entity models, and the
// request/response schemas with their validation rules.
//
// Authentication:
//   - TokenService signs and verifies HMAC tokens. Access and refresh tokens
//     share one claim shape and differ only by lifetime.
//   - Auther implements the login, refresh, and identity-resolution flows on
//     top of a UserStore. A configured superuser identity authenticates
//     without a backing row; its claims are fixed.
//
// Entities and schemas:
//   - Models are bun records keyed by autoincrement ids. Each entity pairs a
//     Response projection with Create/Update payloads that validate
//     themselves and build the record to persist.
//
// The repository package provides generic CRUD over these models; the server
// package exposes them over HTTP.
package miit
