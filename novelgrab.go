// Package novelgrab provides a CLI tool for batch-scraping readable text
// from rendered web pages. It drives a real browser session per page,
// isolates the main content region (auto-detecting a CSS selector when none
// is given), strips markup and advertising noise, and aggregates the results
// of a whole URL batch into a single labeled text artifact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package novelgrab
