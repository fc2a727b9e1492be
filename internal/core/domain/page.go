package domain

// VotesUnknown marks a page that carries no vote counter.
const VotesUnknown = -1

// Page is what a PageParser extracts from a single product page.
type Page struct {
	// Title is the product name shown on the page.
	Title string

	// Element holds the raw flag and digit string.
	Element SourceElement

	// Names are the category lists declared by the page itself.
	// Empty when the page carries no name table.
	Names NameLists

	// Votes is the number of community votes, or VotesUnknown.
	Votes int
}
