package game

// PieceKind enumerates the fourteen shogi piece kinds. NoKind marks an empty
// square or the absence of a capture.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
)

// HandKinds lists the kinds that can be held in reserve, in drop order.
var HandKinds = [...]PieceKind{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

var pieceValues = [...]int{
	NoKind:    0,
	Pawn:      100,
	Lance:     350,
	Knight:    400,
	Silver:    500,
	Gold:      600,
	Bishop:    900,
	Rook:      1000,
	King:      100000,
	ProPawn:   600,
	ProLance:  600,
	ProKnight: 600,
	ProSilver: 600,
	Horse:     1300,
	Dragon:    1400,
}

var pieceLetters = [...]string{
	NoKind:    "",
	Pawn:      "P",
	Lance:     "L",
	Knight:    "N",
	Silver:    "S",
	Gold:      "G",
	Bishop:    "B",
	Rook:      "R",
	King:      "K",
	ProPawn:   "+P",
	ProLance:  "+L",
	ProKnight: "+N",
	ProSilver: "+S",
	Horse:     "+B",
	Dragon:    "+R",
}

// Value is the material value of the kind. The king outweighs every other
// piece on the board combined.
func (k PieceKind) Value() int {
	if k < NoKind || int(k) >= len(pieceValues) {
		return 0
	}
	return pieceValues[k]
}

func (k PieceKind) String() string {
	if k < NoKind || int(k) >= len(pieceLetters) {
		return "?"
	}
	return pieceLetters[k]
}

func (k PieceKind) CanPromote() bool {
	return k >= Pawn && k <= Rook && k != Gold
}

func (k PieceKind) IsPromoted() bool {
	return k >= ProPawn
}

// Promote returns the promoted form, or the kind itself if it cannot promote.
func (k PieceKind) Promote() PieceKind {
	switch k {
	case Pawn:
		return ProPawn
	case Lance:
		return ProLance
	case Knight:
		return ProKnight
	case Silver:
		return ProSilver
	case Bishop:
		return Horse
	case Rook:
		return Dragon
	}
	return k
}

// Demote returns the unpromoted form, as the piece goes into a hand.
func (k PieceKind) Demote() PieceKind {
	switch k {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case Horse:
		return Bishop
	case Dragon:
		return Rook
	}
	return k
}

func handIndex(k PieceKind) int {
	for i, kind := range HandKinds {
		if kind == k {
			return i
		}
	}
	return -1
}

// Piece is a kind owned by a side. The zero value is an empty square.
type Piece struct {
	Kind PieceKind
	Side Side
}

func (p Piece) Empty() bool {
	return p.Kind == NoKind
}

// step is a one-square offset from Black's point of view: dr < 0 is forward.
type step struct {
	df, dr int
}

var (
	forward    = []step{{0, -1}}
	knightJump = []step{{-1, -2}, {1, -2}}
	silverStep = []step{{0, -1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	goldStep   = []step{{0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}}
	kingStep   = []step{{0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}, {-1, 1}, {1, 1}}
	diagonals  = []step{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	orthogonal = []step{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

// movement describes how a kind moves: single steps and sliding rays.
type movement struct {
	steps  []step
	slides []step
}

var movements = map[PieceKind]movement{
	Pawn:      {steps: forward},
	Lance:     {slides: forward},
	Knight:    {steps: knightJump},
	Silver:    {steps: silverStep},
	Gold:      {steps: goldStep},
	Bishop:    {slides: diagonals},
	Rook:      {slides: orthogonal},
	King:      {steps: kingStep},
	ProPawn:   {steps: goldStep},
	ProLance:  {steps: goldStep},
	ProKnight: {steps: goldStep},
	ProSilver: {steps: goldStep},
	Horse:     {steps: orthogonal, slides: diagonals},
	Dragon:    {steps: diagonals, slides: orthogonal},
}

// mustPromote reports whether a kind arriving on the given relative rank would
// have no legal move afterwards.
func mustPromote(k PieceKind, relativeRank int) bool {
	switch k {
	case Pawn, Lance:
		return relativeRank == 1
	case Knight:
		return relativeRank <= 2
	}
	return false
}
