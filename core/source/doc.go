// Package source discovers inventory extension definition files.
//
// A Source returns raw Documents (name, format and bytes). It does not parse
// them; the inventory feature turns documents into staged extensions.
//
// # Kinds
//
//   - local: regular files directly inside a directory (default "./extensions").
//   - bucket: objects under a prefix of the configured storage bucket.
//
// Only files ending in .toml, .yaml or .yml are considered. Documents are
// returned sorted by name so that staging order is reproducible.
package source
