// Package domain contains the core business entities and value objects of
// the Leitner scheduling library: flashcards, review difficulties, and
// review history records. It is independent of any scheduling policy or
// delivery mechanism.
package domain
