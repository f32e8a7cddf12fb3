// Package racing_test provides runnable examples for shortcut
// analysis, shown via "go test -run Example".
package racing_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/racing"
)

// ExampleAnalyze counts the shortcuts through one wall of a folded
// corridor.
func ExampleAnalyze() {
	g, err := grid.Parse([]string{
		"#####",
		"#S#E#",
		"#.#.#",
		"#...#",
		"#####",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	course, err := racing.Analyze(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	shortcuts, _ := course.CountShortcuts(2, 2)
	fmt.Printf("length=%d shortcuts=%d\n", course.Length(), shortcuts)
	// Output: length=6 shortcuts=2
}
