// Package domain contains the core business entities and pure logic of
// the PakUni directory: universities, scholarships, filter criteria and
// the filtering rules, favourites, user sessions, and application
// settings. It has no dependencies on adapters or external services.
package domain
