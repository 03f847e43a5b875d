// Package pageindex builds a keyword index for a printed book by checking
// human-curated keyword/section annotations against the book's extracted
// page text.
//
// # Overview
//
// Annotators tie each index keyword to one or more book sections. The
// scanner only looks inside the pages those sections cover and records
// every page where the keyword text appears. The result is a list of
// candidate pages per keyword plus two data-quality reports: keywords
// that were never found and keywords found suspiciously often.
//
// # Key Concepts
//
//   - Sections: "major-minor" identifiers such as "2-1". The section table
//     lists each section's first page; a section ends where the next one
//     begins.
//
//   - Pages: the page-text dump is labelled with PDF page numbers. The
//     configured offset maps them onto the printed page numbers.
//
//   - Match strategies: a keyword is matched against a page through an
//     ordered list of strategies (case-sensitive, case-insensitive, bare
//     form without the "(qualifier)"). The first strategy that matches
//     wins.
//
// # Usage
//
//	cfg := pageindex.DefaultConfig()
//	book, err := pageindex.Load(ctx, cfg, logger)
//	result := pageindex.Scan(book, logger)
//	paths, err := pageindex.WriteReports(cfg.ResolvedOutputDir(), cfg.Files, result, cfg.Threshold)
//
// # Architecture
//
//   - types.go: core data types (Config, Page, Book, Result)
//   - sections.go: section table and page ranges
//   - keywords.go: keyword helpers (qualifier stripping)
//   - loader.go: input files
//   - match.go: match strategies
//   - scan.go: occurrence scanner
//   - report.go: report rows and TSV output
package pageindex
