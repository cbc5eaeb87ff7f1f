package board

import "strings"

// MoveList is an ordered sequence of moves, such as a principal variation
// or the line played so far in a game.
type MoveList []Move

// ParseMoveList parses a whitespace-separated sequence of LAN moves, such as
// "e2e4 e7e5 g1f3".
func ParseMoveList(str string) (MoveList, error) {
	fields := strings.Fields(str)
	ret := make(MoveList, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		ret = append(ret, m)
	}
	return ret, nil
}

// String renders the list as whitespace-separated LAN moves.
func (ml MoveList) String() string {
	parts := make([]string, len(ml))
	for i, m := range ml {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
