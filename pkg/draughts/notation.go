package draughts

import (
	"fmt"
	"strconv"
	"strings"
)

// String notation of the position, in the style of PDN FEN tags:
//
//	<turn>:W<pieces>:B<pieces>
//
// <turn> - either 'W' or 'B'
//
// <pieces> - comma separated, 1-based packed squares, kings are prefixed with 'K'
//
// Examples:
//
// * W:W14,K3:B5,K22
//
// * B:W:BK1
func (p *Position) Notation() string {
	builder := strings.Builder{}
	builder.WriteByte(_colorByte(p.turn))

	for _, c := range [2]Color{White, Black} {
		builder.WriteByte(':')
		builder.WriteByte(_colorByte(c))
		first := true
		for _, sq := range p.Pieces(c) {
			if !first {
				builder.WriteByte(',')
			}
			first = false
			if p.cells[sq].IsKing() {
				builder.WriteByte('K')
			}
			builder.WriteString(strconv.Itoa(int(sq) + 1))
		}
	}
	return builder.String()
}

func _colorByte(c Color) byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

func _parseColor(b byte) (Color, bool) {
	switch b {
	case 'W', 'w':
		return White, true
	case 'B', 'b':
		return Black, true
	}
	return White, false
}

// Create the position from given notation string, see Notation for the format
func ParseNotation(topo *Topology, notation string) (*Position, error) {
	sections := strings.Split(strings.TrimSpace(notation), ":")
	if len(sections) == 0 || len(sections[0]) != 1 {
		return nil, fmt.Errorf("%w: missing turn in %q", ErrInvalidNotation, notation)
	}

	pos := NewPosition(topo)
	turn, ok := _parseColor(sections[0][0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown turn %q", ErrInvalidNotation, sections[0])
	}
	pos.turn = turn

	for _, section := range sections[1:] {
		if section == "" {
			return nil, fmt.Errorf("%w: empty section in %q", ErrInvalidNotation, notation)
		}

		color, ok := _parseColor(section[0])
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidNotation, section[:1])
		}

		if len(section) == 1 {
			continue
		}

		for _, item := range strings.Split(section[1:], ",") {
			king := strings.HasPrefix(item, "K")
			if king {
				item = item[1:]
			}

			n, err := strconv.Atoi(item)
			if err != nil {
				return nil, fmt.Errorf("%w: bad square %q: %v", ErrInvalidNotation, item, err)
			}
			if n < 1 || n > topo.PackedCount() {
				return nil, fmt.Errorf("%w: square %d out of range 1-%d", ErrInvalidNotation, n, topo.PackedCount())
			}
			pos.InsertPiece(NewPiece(Square(n-1), color, king))
		}
	}

	return pos, nil
}
