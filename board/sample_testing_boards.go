package board

// Positions used across the test suites, in DefaultSymbols. All are 4x4.
var (
	// DrawnFourByFour is full with no run of three anywhere.
	DrawnFourByFour = []string{
		"xxoo",
		"ooxx",
		"xxoo",
		"ooxx",
	}

	// BotTwoInARow has o at (1,0) and (1,1) with (1,2) open. The player's
	// marks are spread out so that no single reply wins for them.
	BotTwoInARow = []string{
		"x..x",
		"oo..",
		"....",
		"x...",
	}

	// PlayerTopRow has x on (0,0), (0,1), (0,2).
	PlayerTopRow = []string{
		"xxx.",
		"o...",
		"o...",
		"....",
	}
)
