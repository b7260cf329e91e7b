// Package notation parses EPD fixture lines used by seed-scenario
// tests: a FEN position followed by one or more opcodes. Only the two
// opcodes the engine's tests need are supported: bm (best move, given
// in long algebraic notation rather than SAN) and id (a free-form
// label).
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pensquid/yobmef/engine"
)

// Fixture is one parsed EPD line.
type Fixture struct {
	Position  engine.Board
	ID        string
	BestMoves []engine.Movement
}

// ParseEPD parses a line of the form:
//
//	<fen-field-1> <fen-field-2> <fen-field-3> <fen-field-4> [<halfmove> <fullmove>] bm <move> [<move> ...]; [id "<label>";]
//
// The board fields reuse engine.FromFEN; en-passant/castling-equality
// rules there apply identically to fixtures. The optional halfmove
// clock and fullmove number of a full FEN are skipped.
func ParseEPD(line string) (Fixture, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Fixture{}, fmt.Errorf("notation: epd line has too few fields: %q", line)
	}
	board, err := engine.FromFEN(strings.Join(fields[:4], " "))
	if err != nil {
		return Fixture{}, fmt.Errorf("notation: epd position: %w", err)
	}

	rest := fields[4:]
	for i := 0; i < 2 && len(rest) > 0; i++ {
		if _, err := strconv.Atoi(rest[0]); err != nil {
			break
		}
		rest = rest[1:]
	}

	fx := Fixture{Position: board}
	for _, op := range splitOperations(strings.Join(rest, " ")) {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		name, rest, _ := strings.Cut(op, " ")
		switch name {
		case "bm":
			for _, lan := range strings.Fields(rest) {
				mv, ok := engine.MovementFromNotation(lan)
				if !ok {
					return Fixture{}, fmt.Errorf("notation: epd bm operand %q is not a move in long algebraic notation", lan)
				}
				fx.BestMoves = append(fx.BestMoves, mv)
			}
		case "id":
			fx.ID = strings.Trim(rest, `"`)
		default:
			return Fixture{}, fmt.Errorf("notation: unsupported epd opcode %q", name)
		}
	}
	return fx, nil
}

// splitOperations splits a semicolon-terminated operation list, e.g.
// `bm h5f7; id "mate in 1";` into ["bm h5f7", ` id "mate in 1"`].
func splitOperations(s string) []string {
	var ops []string
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) != "" {
			ops = append(ops, part)
		}
	}
	return ops
}

// String renders fx back out in the same opcode shape it was parsed
// from.
func (fx Fixture) String() string {
	fenFields := strings.Fields(fx.Position.ToFEN())
	s := strings.Join(fenFields[:4], " ")
	if len(fx.BestMoves) > 0 {
		s += " bm"
		for _, mv := range fx.BestMoves {
			s += " " + mv.String()
		}
		s += ";"
	}
	if fx.ID != "" {
		s += fmt.Sprintf(` id "%s";`, fx.ID)
	}
	return s
}
