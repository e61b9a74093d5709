package query

import "strings"

// Terminal command names.
const (
	CommandHelp   = "help"
	CommandClear  = "clear"
	CommandFields = "fields"
	CommandTheme  = "theme"
	CommandStats  = "stats"
	CommandReset  = "reset"
)

// Commands lists the terminal commands in display order.
var Commands = []string{CommandHelp, CommandClear, CommandTheme, CommandFields, CommandStats, CommandReset}

var commandAliases = map[string]string{
	"?":    CommandHelp,
	"h":    CommandHelp,
	"man":  CommandHelp,
	"cls":  CommandClear,
	"ls":   CommandFields,
	"list": CommandFields,
}

// ResolveCommand maps a command word or one of its aliases to the command name.
func ResolveCommand(word string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if canonical, ok := commandAliases[w]; ok {
		return canonical, true
	}
	for _, c := range Commands {
		if c == w {
			return c, true
		}
	}
	return "", false
}

// parseCommand recognizes a bare command word, or any word starting with `theme`
// followed by an optional argument. `themes` therefore lists the themes.
func parseCommand(s string) (CommandQuery, bool) {
	parts := strings.Fields(s)
	if strings.HasPrefix(strings.ToLower(parts[0]), CommandTheme) {
		arg := strings.TrimSpace(s[len(parts[0]):])
		return CommandQuery{Name: CommandTheme, Arg: strings.ToLower(arg)}, true
	}
	name, ok := ResolveCommand(parts[0])
	if !ok {
		return CommandQuery{}, false
	}
	if len(parts) > 1 {
		return CommandQuery{}, false
	}
	return CommandQuery{Name: name}, true
}
