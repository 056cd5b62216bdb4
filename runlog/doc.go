// Package runlog persists finalized metrics records.
//
// What
//
//   - CSVLogger: append-only CSV log, header written exactly once, rows in
//     the fixed metrics.Header order.
//   - Store: SQLite-backed store with per-algorithm aggregate summaries.
//
// Why
//
//	The CSV log is the portable artifact a sweep leaves behind; the SQLite
//	store exists for cross-run queries (solve rates, mean expansion counts)
//	without re-parsing CSV files.
//
// Both sinks treat the record as an opaque flat row. Columns that do not
// apply to a run's algorithm family are empty (CSV) or NULL (SQLite).
package runlog
