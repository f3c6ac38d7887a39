// Package database provides SQLite-based storage for analysis history.
// Every completed analysis is appended to an append-only history table
// that can be listed and queried by number or record ID.
package database
