// Package volby provides a scraper for the 2017 Czech parliamentary
// election results published on volby.cz. It fetches the municipality
// listing of a territorial unit, extracts turnout figures and per-party
// vote counts from each municipality's detail page, and assembles them
// into a single tabular result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, resty/, csv/).
package volby
