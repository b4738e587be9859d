// Package scaffold creates new script repositories, optionally seeded with
// an embedded sample template.
package scaffold
