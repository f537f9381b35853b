package entity

const BoardSize = 9

const (
	PlayerO Player = "O"
	PlayerX Player = "X"

	EmptyCell Cell = ""
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// WinCombos - every line that wins the game when marked by one player.
// Scan order is rows, columns, then diagonals; the first full line decides the winner.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Player string

// Opponent - returns the player who moves after that one.
func (that Player) Opponent() Player {
	if that == PlayerO {
		return PlayerX
	}
	return PlayerO
}

type Cell string

// Mark - returns the cell marked by the player.
func Mark(player Player) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) Player() Player {
	return Player(that)
}

type Board [BoardSize]Cell

// InRange - reports whether the index addresses a cell of the board.
func InRange(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// LineOwner - returns the player holding all three cells of the line.
func (that Board) LineOwner(line [3]int) (Player, bool) {
	a, b, c := that[line[0]], that[line[1]], that[line[2]]
	if a.IsEmpty() || a != b || b != c {
		return "", false
	}

	return a.Player(), true
}

type Outcome struct {
	Status string `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(player Player) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// EvaluateOutcome - determines the outcome of the board without looking at whose turn it is.
func EvaluateOutcome(board Board) Outcome {
	for _, combo := range WinCombos {
		if winner, ok := board.LineOwner(combo); ok {
			return Won(winner)
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Draw()
	}

	return InProgress()
}

type GameState struct {
	Board   Board   `json:"board"`
	Turn    Player  `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
}

// NewGameState - returns an empty board with O to move.
func NewGameState() GameState {
	return GameState{
		Turn:    PlayerO,
		Outcome: InProgress(),
	}
}

func (that GameState) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that GameState) IsInProgress() bool {
	return that.Outcome.Status == StatusInProgress
}
