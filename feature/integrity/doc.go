// Package integrity provides system health checks for the Inventory Manager.
//
// Unlike the 'inventory' package which loads extensions, this package only
// inspects the infrastructure they depend on.
//
// # Checks Provided
//
//   - Structure: Checks that the definition bucket exists and holds the extension prefix.
//   - Schema: Validates that the connected database has every inventory table and column.
//   - Definitions: Parses every definition file and reports the broken ones.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/definitions : Runs definitions check.
package integrity
