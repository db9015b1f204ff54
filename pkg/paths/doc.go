// Package paths provides the filesystem locations catalogpromo reads
// configuration from and writes logs to. It follows the XDG Base
// Directory specification, with environment overrides for each location.
package paths
