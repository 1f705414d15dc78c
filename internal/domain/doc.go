// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/draft, domain/wizard,
// domain/summary, domain/application). This root package holds sentinel
// errors, validation types, and the Action interface used to stage writes
// that can be rolled back.
package domain
