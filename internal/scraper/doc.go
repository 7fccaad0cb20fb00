// Package scraper defines the episode metadata lookup boundary. The
// pipeline treats scrapers as optional collaborators: a missing or
// failing scraper degrades naming, it never fails a job.
package scraper
