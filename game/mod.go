package game

import "fmt"

// Player identifies one of the two seats. The zero value means "nobody" and
// shows up as the winner of an ongoing game or a draw.
type Player int

const (
	Nobody Player = iota
	Player1
	Player2
)

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Nobody
	}
}

// Seat returns a 0-based index for per-player arrays.
func (p Player) Seat() int {
	return int(p) - 1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case Nobody:
		return "nobody"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Result reports the terminal status of a game state.
type Result struct {
	Finished bool
	Winner   Player // Nobody on a draw
	Reason   string // win classification where the game defines one
}

// Engine is the contract every rule engine implements. States are immutable
// values: ApplyMove returns a new state and never modifies its input.
type Engine[S, M any] interface {
	// GenerateMoves returns every legal move for player in state. An empty
	// result means the player has no move (a forced pass), never an error.
	GenerateMoves(state S, player Player) []M

	// ApplyMove consumes one move and returns the successor state. The move
	// must come from GenerateMoves on this state; behavior on any other move
	// is undefined.
	ApplyMove(state S, move M) S

	// Result reports whether state is terminal and who won.
	Result(state S) Result

	// Evaluate scores state from player's perspective; higher is better.
	// Only meaningful on non-terminal states - the searcher scores terminal
	// states itself.
	Evaluate(state S, player Player) float64
}
