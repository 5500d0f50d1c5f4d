// Package version implements semantic versions for inventory extensions.
//
// Versions follow Semantic Versioning 2.0.0 (MAJOR.MINOR.PATCH with optional
// pre-release and build suffixes). Ordering uses SemVer precedence, so build
// metadata never affects comparisons.
//
// # Usage
//
//	v, err := version.Parse("1.4.0")
//	if err != nil {
//	    return err
//	}
//	if v.Less(version.MustParse("2.0.0")) {
//	    // upgrade available
//	}
package version
