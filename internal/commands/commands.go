// Package commands recognizes the slash commands of the chat surface.
package commands

import "strings"

type Kind int

const (
	// None means the text is ordinary chat and goes to the composer.
	None Kind = iota
	Clear
	Help
	Search
	Models
)

type Command struct {
	Kind  Kind
	Query string // set for Search; may be empty when the user gave no query
}

const searchPrefix = "/search"

// Parse maps trimmed, case-normalized text to a command. Only /search is
// prefix-based; the query keeps the user's original casing. Unrecognized
// slash text deliberately falls through as ordinary chat.
func Parse(text string) Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	switch lower {
	case "/clear":
		return Command{Kind: Clear}
	case "/help":
		return Command{Kind: Help}
	case "/models":
		return Command{Kind: Models}
	}
	if strings.HasPrefix(lower, searchPrefix) {
		return Command{Kind: Search, Query: strings.TrimSpace(trimmed[len(searchPrefix):])}
	}
	return Command{Kind: None}
}
