// Package dataprocessing turns raw lottery result files into a normalized
// draw history. It handles the complete ingestion lifecycle: decoding CSV and
// Excel containers into untyped grids, locating publisher-specific header
// layouts, extracting and validating draw rows, and consolidating multiple
// files into one deduplicated history.
//
// # Architecture
//
// The package is organized as a pipeline of small, independently testable
// steps:
//
//  1. ReadGrid: decodes file bytes into a rectangular grid of cell strings
//  2. LocateHeader: finds the header row and maps semantic columns, with a
//     strict strategy (labeled number slots) and a loose fallback (row scan)
//  3. ExtractDraws: validates each data row into a Draw or drops it
//  4. Consolidate: merges files, dedupes by contest ID, sorts newest-first
//
// # Error Handling
//
// File-level failures are typed and name the offending file:
// MalformedFileError (undecodable bytes), HeaderNotFoundError (no
// recognizable layout) and NoValidDrawsError (empty merge). Row-level
// defects - bad dates, wrong draw sizes, out-of-range numbers - are never
// errors; the rows are silently dropped, trading strictness for resilience
// against inconsistent historical exports.
package dataprocessing
