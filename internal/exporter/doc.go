// Package exporter writes analysis results to disk as CSV snapshots and a
// JSON bundle. CSV files carry a UTF-8 BOM so Excel opens them correctly;
// the JSON bundle mirrors the API payload for web consumers.
package exporter
