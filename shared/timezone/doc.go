// Package timezone pins every "now" and every parsed calendar date to the
// configured APP_TIMEZONE (IANA name, UTC when unset or invalid).
//
// Stay dates are calendar days: ParseDate yields midnight in the application
// location and Today yields midnight of the current day, so both can be
// compared directly when checking that a check-in is not in the past.
package timezone
