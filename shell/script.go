package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("yahtzee_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

type handler func(sc *ShellController, cmd *shellcmd) (*Response, error)

// luaCommand wraps a shell handler so that Lua passes it the rest of the
// command line as a single string, and gets back the handler's message.
func luaCommand(name string, h handler) lua.LGFunction {
	return func(L *lua.LState) int {
		sc := getShell(L)
		cmd, err := extractFields(name + " " + L.OptString(1, ""))
		if err == nil {
			var r *Response
			r, err = h(sc, cmd)
			if err == nil {
				L.Push(lua.LString(r.message))
				// return number of results pushed to stack.
				return 1
			}
		}
		log.Err(err).Msg("error-executing-" + name)
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
}

func Total(L *lua.LState) int {
	sc := getShell(L)
	L.Push(lua.LNumber(sc.player.Scorecard().GrandTotal()))
	return 1
}

func Over(L *lua.LState) int {
	sc := getShell(L)
	L.Push(lua.LBool(sc.player.IsOver()))
	return 1
}

func Dice(L *lua.LState) int {
	sc := getShell(L)
	tbl := L.NewTable()
	for _, d := range sc.player.Dice() {
		tbl.Append(lua.LNumber(d))
	}
	L.Push(tbl)
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("yahtzee_shell", lsc)
	L.SetGlobal("yahtzee_new", L.NewFunction(luaCommand("new", (*ShellController).newGame)))
	L.SetGlobal("yahtzee_roll", L.NewFunction(luaCommand("roll", (*ShellController).roll)))
	L.SetGlobal("yahtzee_reroll", L.NewFunction(luaCommand("reroll", (*ShellController).reroll)))
	L.SetGlobal("yahtzee_score", L.NewFunction(luaCommand("score", (*ShellController).score)))
	L.SetGlobal("yahtzee_preview", L.NewFunction(luaCommand("preview", (*ShellController).preview)))
	L.SetGlobal("yahtzee_show", L.NewFunction(luaCommand("show", (*ShellController).show)))
	L.SetGlobal("yahtzee_dice", L.NewFunction(Dice))
	L.SetGlobal("yahtzee_total", L.NewFunction(Total))
	L.SetGlobal("yahtzee_over", L.NewFunction(Over))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg("script finished: " + filepath), nil
}
