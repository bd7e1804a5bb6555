package glyphatlas

import "sync"

// builtinDesigns are the hand-authored 5x9 designs. The two bottom rows
// are reserved for descenders.
func builtinDesigns() []Design {
	return []Design{
		{Code: 'A', Pattern: Pattern(
			".###.",
			"#...#",
			"#...#",
			"#...#",
			"#####",
			"#...#",
			"#...#",
			".....",
			".....",
		)},
		{Code: 'B', Pattern: Pattern(
			"####.",
			"#...#",
			"#...#",
			"####.",
			"#...#",
			"#...#",
			"####.",
			".....",
			".....",
		)},
		{Code: 'C', Pattern: Pattern(
			".###.",
			"#...#",
			"#....",
			"#....",
			"#....",
			"#...#",
			".###.",
			".....",
			".....",
		)},
	}
}

// DefaultDesigns returns the built-in design table, matching DefaultConfig.
// The table is built once on first use and shared by every caller.
var DefaultDesigns = sync.OnceValue(func() *DesignTable {
	t, err := NewDesignTable(builtinDesigns()...)
	if err != nil {
		panic(err) // static data
	}
	return t
})
