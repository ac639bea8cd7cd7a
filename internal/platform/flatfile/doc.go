// Package flatfile persists the in-memory stores as comma separated text
// files in a data directory, one file per record kind plus one for
// enrollments. Loading is lenient: missing files are treated as empty and
// malformed lines are logged and skipped.
package flatfile
