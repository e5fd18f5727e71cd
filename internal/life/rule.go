package life

// Branch-free transition tables indexed by the eight-neighbor sum, one for
// each state the cell is currently in. They encode B3/S23: a dead cell is
// born on exactly three live neighbors, a live cell survives on two or
// three, everything else dies.
var (
	nextFromDead  = [9]uint8{0, 0, 0, 1, 0, 0, 0, 0, 0}
	nextFromAlive = [9]uint8{0, 0, 1, 1, 0, 0, 0, 0, 0}
)
