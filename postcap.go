// Package postcap turns the rendered markup of a social media post into a
// structured, JSON-serializable record: text, author, metrics, media, link
// preview, classification, and a nested record for any quoted post. Every
// field is extracted through an ordered chain of selector strategies so that
// markup churn degrades quality field-by-field instead of breaking captures
// outright, and each record carries a continuous 0-1 confidence score.
//
// This package contains domain types, pure logic, and interfaces following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// rod/, http/).
package postcap
