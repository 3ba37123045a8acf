// Package calendar contains the date arithmetic shared by the recurrence
// resolvers. All helpers operate on the wall clock of the given time and keep
// its location; no timezone conversion takes place.
package calendar
