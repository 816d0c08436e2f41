// Package isoformat chooses ISO 8601 layouts for sets of date/time fields.
//
// Resolution pipeline:
//  1. Classify the field set: pick at most one date planner by field priority
//     (monthOfYear, dayOfYear, weekOfWeekyear, dayOfMonth, dayOfWeek, year,
//     weekyear)
//  2. Run the chosen calendar, ordinal or week date planner; each consumes the
//     fields it places and reports reduced precision
//  3. Run the time planner over hour, minute, second and millis, enforcing the
//     truncation rules of strict mode
//  4. Build the layout and report consumed and leftover fields
//
// The package also exposes a catalog of fixed, named layouts (date, dateTime,
// basicWeekDate, dateOptionalTimeParser, ...) that are built once per process.
package isoformat
