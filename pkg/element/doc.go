// Package element implements page objects over HTML page snapshots.
//
// A page object defines its elements by name, each with a CSS or XPath
// selector that may contain %placeholders%. Resolving a name substitutes
// the placeholders and compiles the selector: CSS through cascadia over
// the parsed HTML tree, XPath through the etree path subset over a mirror
// of the same tree.
package element
