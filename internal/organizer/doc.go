// Package organizer places finished files into the library's flat or
// series/season layout with verified copies and cross-run locking.
package organizer
