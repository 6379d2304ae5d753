package teams

import "strings"

// UnknownAbbreviation is used when the feed carries no abbreviation for a club.
const UnknownAbbreviation = "???"

// Team represents the normalized team shape for use inside games.
// Kept in its own package so palettes and names can be shared by renderers and printers.
type Team struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name,omitempty"`
}

// NormalizeAbbreviation upper-cases and trims a club code, returning UnknownAbbreviation when empty.
func NormalizeAbbreviation(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return UnknownAbbreviation
	}
	return code
}

// DisplayName returns the feed name when present, else the abbreviation.
func (t Team) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Abbreviation
}
