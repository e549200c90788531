package engine

import (
	"bufio"
	"fmt"
	"io"

	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// Agent picks the automated player's move. board is the current
// position and opponent is the player who moved last.
type Agent interface {
	ComputeMove(board game.Board, opponent game.Player) (game.Move, error)
}

// Engine runs one interactive game between a human and an agent.
type Engine struct {
	board    game.Board
	human    game.Player
	computer game.Player
	agent    Agent
	in       *bufio.Scanner
	out      io.Writer
	render   *Renderer
}

// New creates an engine for a single game. human chooses which seat the
// person at the terminal occupies; player one always opens.
func New(agent Agent, human game.Player, in io.Reader, out io.Writer) *Engine {
	return &Engine{
		human:    human,
		computer: human.Other(),
		agent:    agent,
		in:       bufio.NewScanner(in),
		out:      out,
		render:   NewRenderer(out),
	}
}

// Run plays the game to completion and returns the winner, or 0 for a
// draw.
func (e *Engine) Run() (game.Player, error) {
	fmt.Fprintf(e.out, "You are player %s, the computer is player %s.\n", e.human, e.computer)
	fmt.Fprintln(e.out, "Empty cells are shown as dots.")

	// Player one always opens
	if e.computer == game.One {
		if err := e.computerMove(); err != nil {
			return 0, err
		}
	}

	for {
		e.render.Board(e.board)

		if err := e.humanMove(); err != nil {
			return 0, err
		}
		if e.board.Won(e.human) {
			e.render.Board(e.board)
			fmt.Fprintln(e.out, "Congrats, you have won!")
			return e.human, nil
		}
		if e.board.Full() {
			e.render.Board(e.board)
			fmt.Fprintln(e.out, "It's a draw! Try again.")
			return 0, nil
		}

		if err := e.computerMove(); err != nil {
			return 0, err
		}
		if e.board.Won(e.computer) {
			e.render.Board(e.board)
			fmt.Fprintln(e.out, "You lost to a computer! Sad day.")
			return e.computer, nil
		}
		if e.board.Full() {
			e.render.Board(e.board)
			fmt.Fprintln(e.out, "It's a draw! Try again.")
			return 0, nil
		}
	}
}

// humanMove prompts until a legal 1-indexed move is entered.
func (e *Engine) humanMove() error {
	for {
		row, err := e.prompt("Enter row number you would like to move to: ")
		if err != nil {
			return err
		}
		col, err := e.prompt("Enter column number you would like to move to: ")
		if err != nil {
			return err
		}

		mv, err := ParseMove(row, col, e.board)
		if err != nil {
			fmt.Fprintln(e.out, "That is not a valid move")
			continue
		}

		e.board = e.board.Place(mv, e.human)
		return nil
	}
}

func (e *Engine) prompt(msg string) (string, error) {
	fmt.Fprint(e.out, msg)
	if !e.in.Scan() {
		if err := e.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return e.in.Text(), nil
}

func (e *Engine) computerMove() error {
	mv, err := e.agent.ComputeMove(e.board, e.human)
	if err != nil {
		return fmt.Errorf("computer failed to pick a move: %w", err)
	}

	log.Debug().Int("row", mv.Row).Int("col", mv.Col).Msg("computer move")
	fmt.Fprintf(e.out, "The computer moves to row %d, column %d.\n", mv.Row+1, mv.Col+1)
	e.board = e.board.Place(mv, e.computer)
	return nil
}
