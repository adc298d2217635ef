package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/beesgame/bees/board"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("bees_shell")
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

// Tile is bees_tile(token, code). It returns an error string or nil.
func Tile(L *lua.LState) int {
	sc := getShell(L)
	err := sc.game.AddTile(L.CheckString(1), L.CheckString(2))
	if err != nil {
		log.Err(err).Msg("error-executing-tile")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

func Start(L *lua.LState) int {
	getShell(L).game.Start()
	return 0
}

// Turn is bees_turn([side]). With no argument it only reports the side
// on turn.
func Turn(L *lua.LState) int {
	sc := getShell(L)
	if L.GetTop() >= 1 {
		side, ok := board.SideFromString(L.CheckString(1))
		if !ok {
			L.ArgError(1, "unknown side")
			return 0
		}
		sc.game.SetTurn(side)
	}
	L.Push(lua.LString(sc.game.Turn().String()))
	return 1
}

func Move(L *lua.LState) int {
	sc := getShell(L)
	err := sc.game.AddMove(L.CheckString(1), L.CheckString(2))
	if err != nil {
		log.Err(err).Msg("error-executing-move")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

func Proc(L *lua.LState) int {
	L.Push(lua.LNumber(getShell(L).game.ProcMoves()))
	return 1
}

func Fen(L *lua.LState) int {
	L.Push(lua.LString(getShell(L).game.ToFEN()))
	return 1
}

// Print writes its argument to the shell's output.
func Print(L *lua.LState) int {
	getShell(L).showMessage(L.CheckString(1))
	return 0
}

func (sc *ShellController) newLuaState() *lua.LState {
	L := lua.NewState()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("bees_shell", lsc)
	L.SetGlobal("bees_tile", L.NewFunction(Tile))
	L.SetGlobal("bees_start", L.NewFunction(Start))
	L.SetGlobal("bees_turn", L.NewFunction(Turn))
	L.SetGlobal("bees_move", L.NewFunction(Move))
	L.SetGlobal("bees_proc", L.NewFunction(Proc))
	L.SetGlobal("bees_fen", L.NewFunction(Fen))
	L.SetGlobal("bees_print", L.NewFunction(Print))
	return L
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := sc.newLuaState()
	defer L.Close()

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return nil, nil
}
