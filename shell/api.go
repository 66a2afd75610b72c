package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/domino14/yahtzee/automatic"
	"github.com/domino14/yahtzee/config"
	"github.com/domino14/yahtzee/dice"
	"github.com/domino14/yahtzee/game"
	"github.com/domino14/yahtzee/scorecard"
	"github.com/domino14/yahtzee/turnplayer"
)

const defaultAutoplayGames = 1000

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

// selectionString accepts positions separated by spaces or commas, as in
// "1 3 5" or "1,3,5", and joins them the way the selection parser wants.
func selectionString(fields []string) string {
	return strings.Join(strings.FieldsFunc(strings.Join(fields, ","), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}), ",")
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage("usage")), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	seed := sc.config.GetString(config.ConfigSeed)
	if s, ok := cmd.options["seed"]; ok {
		seed = s[0]
	}
	if err := sc.startGame(seed); err != nil {
		return nil, err
	}
	return msg(sc.player.ToDisplayText()), nil
}

func (sc *ShellController) roll(cmd *shellcmd) (*Response, error) {
	rolled, err := sc.player.RollAll()
	if err != nil {
		return nil, err
	}
	if !rolled {
		return msg("No rolls left this turn; score your dice."), nil
	}
	return msg(sc.player.ToDisplayText()), nil
}

// confirmSelection confirms the pending selection typed as fields. Anything
// extractFields took for an option ("-2") is not a dice position, so it
// spoils the whole selection.
func (sc *ShellController) confirmSelection(cmd *shellcmd, fields []string) error {
	if len(cmd.options) > 0 {
		sc.player.CancelSelection()
		return fmt.Errorf("%w: positions must be non-negative numbers", turnplayer.ErrBadSelection)
	}
	return sc.player.ConfirmSelectionString(selectionString(fields))
}

func (sc *ShellController) selectDice(cmd *shellcmd) (*Response, error) {
	if err := sc.player.BeginSelection(); err != nil {
		return nil, err
	}
	if len(cmd.args) > 0 || len(cmd.options) > 0 {
		if err := sc.confirmSelection(cmd, cmd.args); err != nil {
			return nil, err
		}
		return msg(sc.player.ToDisplayText()), nil
	}
	return msg("Type the positions to reroll (e.g. 1 3 5), or cancel."), nil
}

func (sc *ShellController) reroll(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 && len(cmd.options) == 0 {
		return nil, errors.New("usage: reroll <positions>, e.g. reroll 1 3 5")
	}
	if err := sc.player.BeginSelection(); err != nil {
		return nil, err
	}
	if err := sc.confirmSelection(cmd, cmd.args); err != nil {
		return nil, err
	}
	return msg(sc.player.ToDisplayText()), nil
}

func (sc *ShellController) cancel(cmd *shellcmd) (*Response, error) {
	if sc.player.Mode() != game.SelectingMode {
		return nil, game.ErrNotSelecting
	}
	sc.player.CancelSelection()
	return msg("Selection cancelled."), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: score <category>, e.g. score full-house")
	}
	evt, err := sc.player.CommitString(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(evt.String())
	sb.WriteString("\n\n")
	sb.WriteString(sc.player.ToDisplayText())
	if sc.player.IsOver() {
		fmt.Fprintf(&sb, "\nFinal score: %d. Type `new` to play again.", sc.player.Scorecard().GrandTotal())
	}
	return msg(sb.String()), nil
}

// preview shows what the dice on the table would be worth in each
// category, without committing anything.
func (sc *ShellController) preview(cmd *shellcmd) (*Response, error) {
	if !sc.player.DiceState().HasDice() {
		return nil, dice.ErrNoDice
	}
	roll := sc.player.Dice()
	card := sc.player.Scorecard()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dice: %s\n", roll)
	for _, c := range scorecard.Categories() {
		score, ok := scorecard.Evaluate(c, roll)
		note := ""
		switch {
		case card.Filled(c) && c != scorecard.Yahtzee:
			note = "(used)"
		case !ok:
			note = "(doesn't qualify)"
		}
		fmt.Fprintf(&sb, "  %-16s %4d  %s\n", c.Label(), score, note)
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.player.ToDisplayText()), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	return msg(sc.player.History().String()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	numGames := defaultAutoplayGames
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, errors.New("need to play at least one game")
		}
		numGames = n
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	seed := sc.config.GetString(config.ConfigSeed)
	if s, ok := cmd.options["seed"]; ok {
		seed = s[0]
	}
	rules, err := game.RulesFromConfig(sc.config)
	if err != nil {
		return nil, err
	}
	opts := automatic.Options{
		NumGames:   numGames,
		Threads:    threads,
		SeedPhrase: seed,
		Policy:     cmd.options.String("policy"),
		LogFile:    cmd.options.String("logfile"),
	}
	report, err := automatic.PlayGames(context.Background(), rules, opts)
	if err != nil {
		return nil, err
	}
	return msg(report.String()), nil
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: autoanalyze <logfile>")
	}
	analysis, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(analysis), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	key := cmd.args[0]
	value := cmd.args[1]
	sc.config.Set(key, value)
	if err := sc.config.Write(); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	log.Info().Str("key", key).Str("value", value).Msg("config-updated")
	return msg(fmt.Sprintf("Set %s = %s (saved; takes effect on the next game)", key, value)), nil
}
