// Package output renders command results.
//
// A result is a view (CatalogView, ActionView, CheckView, PriceView) that
// can be written in several formats:
//
//   - term: styled headings (lipgloss) and tables (pterm)
//   - text: the same layout with all styling stripped
//   - json, yaml, toml: the view encoded as a document
//   - markdown: tables rendered through glamour
//
// FormatAuto picks term or text depending on the destination, honoring
// NO_COLOR.
package output
