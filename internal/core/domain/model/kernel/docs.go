// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and postal addresses. These types are immutable, validated
// at construction, and carry no behavior beyond their own invariants.
package kernel
