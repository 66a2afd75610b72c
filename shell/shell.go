package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/yahtzee/config"
	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/game"
	"github.com/domino14/yahtzee/turnplayer"
)

const (
	standardPrompt  = "\033[31myahtzee>\033[0m "
	selectingPrompt = "\033[33mreroll which dice?>\033[0m "
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	player *turnplayer.BaseTurnPlayer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController sets up readline and starts a game with the rules
// from cfg.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          standardPrompt,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc, nil
}

func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	sc := &ShellController{config: cfg, out: out}
	if err := sc.startGame(cfg.GetString(config.ConfigSeed)); err != nil {
		return nil, err
	}
	return sc, nil
}

// startGame builds a fresh player from the current configuration, so that
// rule changes made with setconfig apply to the next game.
func (sc *ShellController) startGame(seed string) error {
	rules, err := game.RulesFromConfig(sc.config)
	if err != nil {
		return err
	}
	p, err := turnplayer.BaseTurnPlayerFromRules(rules, dice.SourceFromPhrase(seed))
	if err != nil {
		return err
	}
	sc.player = p
	log.Debug().Bool("seeded", seed != "").Msg("shell-new-game")
	return nil
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "roll", "r":
		return sc.roll(cmd)
	case "select", "e":
		return sc.selectDice(cmd)
	case "reroll":
		return sc.reroll(cmd)
	case "cancel":
		return sc.cancel(cmd)
	case "score":
		return sc.score(cmd)
	case "preview":
		return sc.preview(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "history":
		return sc.history(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "autoanalyze":
		return sc.autoAnalyze(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "script":
		return sc.script(cmd)
	default:
		log.Debug().Msgf("command %q not found", line)
		return nil, errors.New("command not found: " + cmd.cmd)
	}
}

// selectingModeSwitch treats anything that is not one of a few commands as
// the list of dice positions to throw again.
func (sc *ShellController) selectingModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err == errNoData {
		return msg("Type the positions to reroll (e.g. 1 3 5), or cancel."), nil
	} else if err != nil {
		sc.player.CancelSelection()
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye", "help", "show", "s", "cancel":
		return sc.standardModeSwitch(line, sig)
	}
	fields := append([]string{cmd.cmd}, cmd.args...)
	if err := sc.confirmSelection(cmd, fields); err != nil {
		return nil, err
	}
	return msg(sc.player.ToDisplayText()), nil
}

// Execute runs one line of input. It only returns an error when the shell
// should stop.
func (sc *ShellController) Execute(sig chan os.Signal, line string) error {
	var resp *Response
	var err error
	if sc.player.Mode() == game.SelectingMode {
		resp, err = sc.selectingModeSwitch(line, sig)
	} else {
		resp, err = sc.standardModeSwitch(line, sig)
	}
	if err == errQuit {
		return err
	}
	if err != nil && err != errNoData {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
	sc.updatePrompt()
	return nil
}

func (sc *ShellController) updatePrompt() {
	if sc.l == nil {
		return
	}
	if sc.player.Mode() == game.SelectingMode {
		sc.l.SetPrompt(selectingPrompt)
	} else {
		sc.l.SetPrompt(standardPrompt)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(sc.player.ToDisplayText())
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if err := sc.Execute(sig, line); err != nil {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
