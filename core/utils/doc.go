// Package utils provides small conversion helpers shared by the HTTP handlers.
package utils
