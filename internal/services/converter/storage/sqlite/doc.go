// Package sqlite persists conversion history in a SQLite database.
package sqlite
