// Package token composes date/time layouts out of literal and numeric tokens.
//
// A Builder collects elements in order; Build turns them into a Formatter that
// can print field Values to text and parse text back into Values. Elements come
// in three flavours:
//   - printers and parsers: literals, fixed or variable width numbers, fractions,
//     zone offsets
//   - parse-only: optional sub-layouts and alternative sub-layouts
//   - nested formatters appended with Append, which are flattened in place
//
// Parsing never backtracks across elements. Alternatives pick the branch that
// consumes the most text; earlier branches win ties.
package token
