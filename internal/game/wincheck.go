package game

// CheckWinCondition returns the seat that stands on its goal row. player1 is
// checked first; both cannot hold at once since a move changes one token.
func CheckWinCondition(players Players, gridSize int) (PlayerID, bool) {
	if p, ok := players[Player1]; ok && p.Position.Row == GoalRow(Player1, gridSize) {
		return Player1, true
	}
	if p, ok := players[Player2]; ok && p.Position.Row == GoalRow(Player2, gridSize) {
		return Player2, true
	}
	return "", false
}
