package field

var digits = [...]Glyph{
	1: glyphFromRows(
		".#.",
		"##.",
		".#.",
		".#.",
		"###",
	),
	2: glyphFromRows(
		"##.",
		"..#",
		".#.",
		"#..",
		"###",
	),
	3: glyphFromRows(
		"##.",
		"..#",
		".#.",
		"..#",
		"##.",
	),
	4: glyphFromRows(
		"#.#",
		"#.#",
		"###",
		"..#",
		"..#",
	),
	5: glyphFromRows(
		"###",
		"#..",
		"##.",
		"..#",
		"##.",
	),
	6: glyphFromRows(
		".##",
		"#..",
		"###",
		"#.#",
		"###",
	),
	7: glyphFromRows(
		"###",
		"..#",
		".#.",
		".#.",
		".#.",
	),
	8: glyphFromRows(
		"###",
		"#.#",
		"###",
		"#.#",
		"###",
	),
	9: glyphFromRows(
		"###",
		"#.#",
		"###",
		"..#",
		"##.",
	),
}

// Digit returns the mask for digits 1 through 9.
// Anything else returns an empty glyph.
func Digit(n int) Glyph {
	if n < 1 || n > 9 {
		return Glyph{}
	}
	return digits[n]
}
