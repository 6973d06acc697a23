package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

var ErrInvalidSFEN = errors.New("invalid SFEN")

var letterKinds = map[rune]PieceKind{
	'p': Pawn, 'l': Lance, 'n': Knight, 's': Silver,
	'g': Gold, 'b': Bishop, 'r': Rook, 'k': King,
}

// SFEN encodes the position. The move number is always 1 since positions do
// not carry history.
func (p Position) SFEN() string {
	var sb strings.Builder
	for rank := 1; rank <= Ranks; rank++ {
		if rank > 1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := Files; file >= 1; file-- {
			piece, ok := p.PieceAt(Square{File: file, Rank: rank})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pieceSymbol(piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	if p.turn == Black {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}

	hands := 0
	for _, side := range []Side{Black, White} {
		for _, kind := range HandKinds {
			n := p.InHand(side, kind)
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteString(pieceSymbol(Piece{Kind: kind, Side: side}))
			hands++
		}
	}
	if hands == 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(" 1")
	return sb.String()
}

// ParseSFEN decodes "board side hands [moveNumber]".
func ParseSFEN(sfen string) (Position, error) {
	var p Position
	fields := strings.Fields(sfen)
	if len(fields) < 3 || len(fields) > 4 {
		return p, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrInvalidSFEN, len(fields))
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != Ranks {
		return p, fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidSFEN, Ranks, len(rows))
	}
	for i, row := range rows {
		rank := i + 1
		file := Files
		promoted := false
		for _, ch := range row {
			switch {
			case ch == '+':
				promoted = true
				continue
			case ch >= '1' && ch <= '9':
				if promoted {
					return p, fmt.Errorf("%w: dangling '+' on rank %d", ErrInvalidSFEN, rank)
				}
				file -= int(ch - '0')
				continue
			}
			kind, ok := letterKinds[unicode.ToLower(ch)]
			if !ok || file < 1 {
				return p, fmt.Errorf("%w: bad piece %q on rank %d", ErrInvalidSFEN, ch, rank)
			}
			if promoted {
				if !kind.CanPromote() {
					return p, fmt.Errorf("%w: %q cannot be promoted", ErrInvalidSFEN, ch)
				}
				kind = kind.Promote()
				promoted = false
			}
			side := White
			if unicode.IsUpper(ch) {
				side = Black
			}
			p.Put(Square{File: file, Rank: rank}, Piece{Kind: kind, Side: side})
			file--
		}
		if file != 0 || promoted {
			return p, fmt.Errorf("%w: rank %d does not span %d files", ErrInvalidSFEN, rank, Files)
		}
	}

	switch fields[1] {
	case "b":
		p.turn = Black
	case "w":
		p.turn = White
	default:
		return p, fmt.Errorf("%w: bad side to move %q", ErrInvalidSFEN, fields[1])
	}

	if fields[2] != "-" {
		count := 0
		for _, ch := range fields[2] {
			if ch >= '0' && ch <= '9' {
				count = count*10 + int(ch-'0')
				continue
			}
			kind, ok := letterKinds[unicode.ToLower(ch)]
			if !ok || kind == King {
				return p, fmt.Errorf("%w: bad hand piece %q", ErrInvalidSFEN, ch)
			}
			if count == 0 {
				count = 1
			}
			side := White
			if unicode.IsUpper(ch) {
				side = Black
			}
			p.AddToHand(side, kind, count)
			count = 0
		}
		if count != 0 {
			return p, fmt.Errorf("%w: dangling hand count", ErrInvalidSFEN)
		}
	}

	if len(fields) == 4 {
		if _, err := strconv.Atoi(fields[3]); err != nil {
			return p, fmt.Errorf("%w: bad move number %q", ErrInvalidSFEN, fields[3])
		}
	}
	return p, nil
}

// MustParseSFEN is ParseSFEN for fixed positions known to be valid.
func MustParseSFEN(sfen string) Position {
	p, err := ParseSFEN(sfen)
	if err != nil {
		panic(err)
	}
	return p
}

func pieceSymbol(piece Piece) string {
	symbol := piece.Kind.String()
	if piece.Side == White {
		return strings.ToLower(symbol)
	}
	return symbol
}
