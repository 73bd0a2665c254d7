// Package search keeps the invoices list's search and pagination state in
// the URL query string.
//
// The state is never stored. It is rebuilt from the URL on every request by
// ParseState. Writers go through ApplyTerm and PageURL, which always return a
// new URL and leave the caller's URL untouched.
//
// Typing into the search box is debounced: Controller schedules one
// navigation per quiet interval with a Debouncer, so a burst of keystrokes
// produces a single URL rewrite carrying the final term.
package search
