package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/graphplay/unionfind"
)

func ExampleDisjointSet() {
	d := unionfind.New[string]()
	for _, id := range []string{"A", "B", "C", "D"} {
		d.Add(id)
	}
	_ = d.Union("A", "B")
	_ = d.Union("C", "D")

	ab, _ := d.Connected("A", "B")
	ac, _ := d.Connected("A", "C")
	fmt.Println(ab, ac, d.Components())
	// Output: true false [[A B] [C D]]
}
