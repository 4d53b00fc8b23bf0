// Package timezone keeps every stay-date calculation in the hotel's local
// timezone. Check-in/check-out boundaries are calendar days at the property,
// not UTC days, so all parsing and formatting of guest-facing dates goes
// through this package.
package timezone
