package engine

import (
	"fmt"
	"io"

	"tictactoe/game"

	"github.com/muesli/termenv"
)

// Renderer prints the board with 1-indexed headers, coloring each
// player's marks when the terminal supports it.
type Renderer struct {
	out    io.Writer
	styles map[game.Cell]termenv.Style
}

func NewRenderer(out io.Writer) *Renderer {
	term := termenv.NewOutput(out)
	return &Renderer{
		out: out,
		styles: map[game.Cell]termenv.Style{
			game.CellOne: term.String("1").Foreground(term.Color("9")).Bold(),  // red
			game.CellTwo: term.String("2").Foreground(term.Color("12")).Bold(), // blue
			game.Empty:   term.String(".").Faint(),
		},
	}
}

func (r *Renderer) Board(b game.Board) {
	fmt.Fprint(r.out, "\n   ")
	for c := 1; c <= game.Size; c++ {
		fmt.Fprintf(r.out, " %d ", c)
	}
	fmt.Fprintln(r.out)

	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(r.out, " %d ", row+1)
		for col := 0; col < game.Size; col++ {
			fmt.Fprintf(r.out, " %s ", r.styles[b.At(row, col)])
		}
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)
}
