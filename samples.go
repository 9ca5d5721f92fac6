package mini

type Sample struct {
	Name   string
	Source string
	Want   int32
}

// SamplePrograms are small programs exercising every statement kind.
var SamplePrograms = []Sample{
	{
		Name:   "sum",
		Source: "A = 2\nB = 8\nC = A + B\nC",
		Want:   10,
	},
	{
		Name:   "reassign",
		Source: "A = 2\nB = 22\nZ = 91\nK = A + B\nZ = K + A\nZ",
		Want:   26,
	},
	{
		Name:   "literal-sum",
		Source: "A = 2 + 1\nB = A + 9\nC = A + B\nA",
		Want:   3,
	},
	{
		Name:   "negative",
		Source: "A = -15\nB = -6 + A\nC = -1 + 2000\nD = A + C\nD",
		Want:   1984,
	},
}
