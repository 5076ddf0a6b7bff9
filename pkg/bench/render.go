package bench

import (
	"strings"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
	"github.com/muesli/termenv"
)

// Board colors, as understood by termenv.Profile.Color
var (
	DarkSquareColor  = "#5d4037"
	LightSquareColor = "#d7ccc8"
	WhitePieceColor  = "#ffffff"
	BlackPieceColor  = "#000000"
)

// Render the board with White's first row at the bottom, using the output's
// color profile (plain characters for termenv.Ascii)
func RenderBoard(output *termenv.Output, pos *draughts.Position) string {
	topo := pos.Topology()
	size := topo.Size()
	builder := strings.Builder{}

	for row := size - 1; row >= 0; row-- {
		for col := 0; col < size; col++ {
			sq, playable := topo.ToPack(row*size + col)
			if !playable {
				builder.WriteString(output.String("   ").Background(output.Color(LightSquareColor)).String())
				continue
			}

			piece := pos.Piece(sq)
			cell := " " + string(piece.Rune()) + " "
			if piece.Empty() {
				cell = "   "
			}

			style := output.String(cell).Background(output.Color(DarkSquareColor))
			switch {
			case piece.Empty():
			case piece.Color == draughts.White:
				style = style.Foreground(output.Color(WhitePieceColor)).Bold()
			default:
				style = style.Foreground(output.Color(BlackPieceColor)).Bold()
			}
			builder.WriteString(style.String())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
