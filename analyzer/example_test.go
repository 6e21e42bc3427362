package analyzer_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/analyzer"
	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleAnalyze measures a three-cell corridor.
func ExampleAnalyze() {
	g, _ := grid.New(3, 1)
	_ = g.RemoveWall(grid.Cell{Row: 0, Col: 0}, grid.East)
	_ = g.RemoveWall(grid.Cell{Row: 0, Col: 1}, grid.East)

	r, err := analyzer.Analyze(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dead ends: %d, longest: %d, average: %.2f, branching: %.2f, quality: %.4f\n",
		r.DeadEnds, r.LongestPath, r.AveragePathLength, r.BranchingFactor, r.QualityIndex)
	// Output: dead ends: 2, longest: 2, average: 1.33, branching: 2.00, quality: 0.5500
}
