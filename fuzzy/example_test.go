package fuzzy_test

import (
	"fmt"

	"github.com/katalvlaran/pathfuzz/fuzzy"
)

func ExampleDegree() {
	fmt.Println(fuzzy.Degree(2.5, 0, 0, 5), fuzzy.Degree(7.5, 5, 10, 10), fuzzy.Degree(4, 2, 4, 8))
	// Output:
	// 0.5 0.5 1
}

func ExampleTip() {
	r := fuzzy.Tip(7, 3)
	fmt.Printf("tip %.2f%% (low %.1f, high %.1f)\n", r.Output, r.LowActivation, r.HighActivation)
	// Output:
	// tip 5.00% (low 0.4, high 0.0)
}

func ExampleRuleBase_Infer() {
	inf, err := fuzzy.TipRuleBase().Infer(map[string]float64{"food": 9, "service": 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", inf.Output)
	// Output:
	// 20.00
}
