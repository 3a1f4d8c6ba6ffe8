// Package quotes provides a bounded-concurrency scraper for paginated,
// category-organized quote sites. It walks each pending category page by
// page, persists the extracted quotes to MongoDB, and exports the stored
// data to CSV and XLSX files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., mongo/, goquery/, http/).
package quotes
