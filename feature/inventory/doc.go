// Package inventory implements inventory extensions: definition files that
// declare device manufacturers, classifications and devices under a versioned
// extension identity.
//
// # Flow
//
//  1. A source.Source discovers TOML and YAML definition files.
//  2. ParseDocument decodes and validates each file into a models.InventoryExtension.
//  3. Manager stages the extensions, dropping duplicate identities.
//  4. reconcile.LoadAll matches them against the loaded extensions in Store and
//     loads, reloads or skips each one.
//
// # Endpoints
//
//   - GET  /extensions          loaded extensions
//   - GET  /extensions/staged   extensions found in the definition source
//   - GET  /extensions/:id      one loaded extension with its devices
//   - POST /extensions/load     run a pass (?override=true&dry_run=true)
//
// Reload never happens for an extension whose display name changed, even when
// its version is newer.
package inventory
