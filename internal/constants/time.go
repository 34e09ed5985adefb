package constants

// DateFormat is the canonical date format used throughout the application
// (YYYY-MM-DD). Every stored date and every due-date comparison uses this
// single format; mixed month/day orderings are rejected at the boundary.
const DateFormat = "2006-01-02"
