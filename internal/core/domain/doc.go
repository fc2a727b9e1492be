// Package domain defines the core entities for aroma.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceElement: the flag and digit string read off a product page
//   - NameLists: the two ordered category name lists
//   - FlavourProfile: category name to proportion
//   - Page: everything a PageParser extracts from one product page
//   - ProfileRecord: a stored, computed profile
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
