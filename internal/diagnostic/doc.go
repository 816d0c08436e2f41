// Package diagnostic provides structured warnings, errors, and
// "why this layout" explanations for ISO 8601 field resolution.
//
// Key capabilities:
//   - Relaxed (non-ISO) layout warnings
//   - Truncated time and gap placeholder warnings
//   - Reduced precision notes
//   - Unplaced field reports
package diagnostic
