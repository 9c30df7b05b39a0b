package ports

// IgnoreMatcher classifies a path relative to a project root against the
// project's ignore rules.
//
//go:generate go run go.uber.org/mock/mockgen -source=matcher.go -destination=mocks/mock_matcher.go -package=mocks
type IgnoreMatcher interface {
	// Match reports whether the path (split into segments) is ignored.
	// A true result for a directory prunes the whole subtree.
	Match(path []string, isDir bool) bool
}

// MatcherBuilder parses a project's ignore-rule files into a matcher.
type MatcherBuilder interface {
	// Build reads the rule files under root. The version-control
	// metadata directory is always implicitly ignored. When rule files
	// cannot be read or parsed, Build returns a matcher carrying only
	// the implicit rules together with the error, so callers can log the
	// failure and keep walking.
	Build(root string) (IgnoreMatcher, error)
}
