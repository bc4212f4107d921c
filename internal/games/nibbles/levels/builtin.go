package levels

import "github.com/vovakirdan/nibbles/internal/core"

// Builtin returns the built-in levels for the 40×23 grid.
func Builtin() []Level {
	return []Level{
		{
			ID:   "01-open",
			Name: "Open Field",
			Spawns: [2]Spawn{
				{U: 8, V: 6, Heading: core.HeadingRight},
				{U: 31, V: 16, Heading: core.HeadingLeft},
			},
		},
		{
			ID:   "02-divider",
			Name: "Divider",
			Spawns: [2]Spawn{
				{U: 8, V: 5, Heading: core.HeadingRight},
				{U: 31, V: 17, Heading: core.HeadingLeft},
			},
			Walls: []WallOp{
				HLine(10, 11, 20),
			},
		},
		{
			ID:   "03-pillars",
			Name: "Pillars",
			Spawns: [2]Spawn{
				{U: 4, V: 11, Heading: core.HeadingUp},
				{U: 35, V: 11, Heading: core.HeadingDown},
			},
			Walls: []WallOp{
				VLine(13, 5, 13),
				VLine(26, 5, 13),
			},
		},
		{
			ID:   "04-window",
			Name: "Window",
			Spawns: [2]Spawn{
				{U: 4, V: 3, Heading: core.HeadingRight},
				{U: 35, V: 19, Heading: core.HeadingLeft},
			},
			Walls: []WallOp{
				HLine(10, 6, 8),
				HLine(22, 6, 8),
				HLine(10, 16, 8),
				HLine(22, 16, 8),
				VLine(10, 6, 4),
				VLine(10, 13, 4),
				VLine(29, 6, 4),
				VLine(29, 13, 4),
			},
		},
		{
			ID:   "05-blocks",
			Name: "Blocks",
			Spawns: [2]Spawn{
				{U: 12, V: 2, Heading: core.HeadingRight},
				{U: 27, V: 20, Heading: core.HeadingLeft},
			},
			Walls: []WallOp{
				Rect(8, 5, 4, 3),
				Rect(28, 5, 4, 3),
				Rect(8, 15, 4, 3),
				Rect(28, 15, 4, 3),
				Rect(18, 9, 4, 5),
			},
		},
		{
			ID:   "06-switchback",
			Name: "Switchback",
			Spawns: [2]Spawn{
				{U: 3, V: 3, Heading: core.HeadingRight},
				{U: 36, V: 19, Heading: core.HeadingLeft},
			},
			Walls: []WallOp{
				HLine(1, 6, 25),
				HLine(14, 11, 25),
				HLine(1, 16, 25),
			},
		},
	}
}
