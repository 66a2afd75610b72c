package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/yahtzee/automatic"
	"github.com/domino14/yahtzee/config"
	"github.com/domino14/yahtzee/scorecard"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-seed"},
	},
	"score": {
		Args: categoryNames(),
	},
	"autoplay": {
		Options: []string{"-threads", "-policy", "-seed", "-logfile"},
	},
	"setconfig": {
		Args: []string{
			config.ConfigNumDice, config.ConfigMaxRolls, config.ConfigRulesFile,
			config.ConfigSeed, config.ConfigAutoplayThreads, config.ConfigDebug,
		},
	},
	"help": {
		Args: []string{"score", "reroll", "autoplay", "script", "setconfig"},
	},
}

var commandNames = []string{
	"help", "new", "roll", "select", "reroll", "cancel", "score", "preview",
	"show", "history", "autoplay", "autoanalyze", "setconfig", "script", "exit",
}

var policyValues = []string{automatic.OneRollPolicy, automatic.ChaseFacePolicy}

func categoryNames() []string {
	names := make([]string, 0, scorecard.NumCategories)
	for _, c := range scorecard.Categories() {
		names = append(names, c.String())
	}
	return names
}

// openCategoryNames lists what can still be scored; Yahtzee always can.
func (c *ShellCompleter) openCategoryNames() []string {
	card := c.sc.player.Scorecard()
	var names []string
	for _, cat := range scorecard.Categories() {
		if !card.Filled(cat) || cat == scorecard.Yahtzee {
			names = append(names, cat.String())
		}
	}
	return names
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}
		switch {
		case lastCompleteField == "-policy":
			completions = policyValues
		case cmdName == "score" && c.sc.player != nil:
			completions = c.openCategoryNames()
		case (cmdName == "reroll" || cmdName == "select") && c.sc.player != nil:
			for i := 1; i <= c.sc.player.DiceState().NumDice(); i++ {
				completions = append(completions, strconv.Itoa(i))
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
