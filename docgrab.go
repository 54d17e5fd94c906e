// Package docgrab provides a CLI-based documentation grabber for
// Microsoft Learn. It queries the Learn search API, fetches the matching
// articles concurrently, extracts their main content as markdown, and
// persists the aggregate as a single JSON file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., mslearn/, goquery/, fs/).
package docgrab
