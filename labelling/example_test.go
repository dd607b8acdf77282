package labelling_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/labelling"
	"github.com/katalvlaran/mog/mog"
)

// ExamplePartial_Complete labels the column sextet from four hand-placed
// labels and prints the labels row by row.
func ExamplePartial_Complete() {
	p := labelling.New(golay.StandardSextet()).
		With(mog.PointAt(0), f4.Zero).
		With(mog.PointAt(1), f4.Zero).
		With(mog.PointAt(7), f4.One).
		With(mog.PointAt(2), f4.Alpha)
	fmt.Println(p.State())

	l, err := p.Complete()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for r := 0; r < 4; r++ {
		row := make([]string, 0, 6)
		for c := 0; c < 6; c++ {
			row = append(row, l.Label(mog.PointAt(c+6*r)).String())
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// Perfect{x=0 y=1 z=ω pair=Left side=L third=MiddleL}
	// 0 0 ω ω ω ω
	// 1 1 ω̄ ω̄ ω̄ ω̄
	// ω ω 0 0 0 0
	// ω̄ ω̄ 1 1 1 1
}
