package grain_test

import (
	"fmt"

	"github.com/cwbudde/algo-granular/dsp/grain"
)

func ExampleSelect() {
	g, err := grain.Select(44100, 44100, 0.5, 0.25)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("start=%d length=%d end=%d\n", g.Start, g.Length, g.End())

	// Output:
	// start=11025 length=11025 end=22050
}
