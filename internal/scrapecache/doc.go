// Package scrapecache persists scraper lookup results in SQLite keyed
// by (scraper, series, season, episode).
package scrapecache
