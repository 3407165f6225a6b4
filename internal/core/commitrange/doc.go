// Package commitrange computes the set of commits under review and checks
// user-supplied skip-to and stop-at boundaries against it.
//
// A range is open at its base and closed at its tip: it holds the commits
// reachable from the tip but not from the base, newest first, exactly as
// git rev-list base..tip prints them.
package commitrange
