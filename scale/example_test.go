package scale_test

import (
	"fmt"

	"github.com/gogpu/ggplot/scale"
)

func ExampleExpansion_Apply() {
	e, err := scale.NewExpansion([]float64{0, 0.1}, []float64{0})
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Apply(scale.Range{0, 10}))
	// Output: [0, 11]
}

func ExampleExpandLimitsScale() {
	x := scale.NewDiscrete()
	x.Train("setosa", "versicolor", "virginica")
	x.TrainContinuous(0.5, 1.5)

	e := scale.DefaultExpansion(x, scale.DefaultDiscreteExpansion, scale.DefaultContinuousExpansion, true)
	info := scale.ExpandLimitsScale(x, e, scale.CoordLimits{})
	fmt.Printf("%.1f %.1f\n", info.ContinuousRange[0], info.ContinuousRange[1])
	// Output: 0.4 3.6
}
