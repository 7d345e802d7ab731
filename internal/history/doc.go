// Package history persists generated concordances in SQLite so earlier runs
// can be listed, shown again, and pruned.
//
// The Store owns the database connection, applies embedded migrations on
// open, and trims old runs to the configured retention after each insert.
// Runs are identified by UUIDs; lookups accept any unique ID prefix.
package history
