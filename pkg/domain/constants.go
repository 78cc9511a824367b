package domain

const (
	// DefaultBackToken is the conventional input for going back one position.
	// Menus only honour it when configured with it.
	DefaultBackToken = ".."

	// MaxSuggestions caps the "did you mean" list of an UnknownCommandError.
	MaxSuggestions = 3
)

// LicensePhrases are answered with the license notice instead of navigating.
// They are matched case-insensitively.
var LicensePhrases = []string{
	"license", "warranty", "liability",
	"about license", "about warranty", "about liability",
	"show license", "show warranty", "show liability",
}
