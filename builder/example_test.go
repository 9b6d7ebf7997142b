package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphplay/builder"
)

// ExampleBuildStore builds a 2×2 grid with letter IDs.
func ExampleBuildStore() {
	s, err := builder.BuildStore(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2)},
		builder.Grid(2, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range s.Edges() {
		fmt.Println(e.Source, e.Target, e.Weight)
	}
	// Output:
	// A B 2
	// A C 2
	// B D 2
	// C D 2
}
