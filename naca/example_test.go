package naca_test

import (
	"fmt"

	"github.com/dallen2021/AeroStack/naca"
)

// ExampleParseCode decodes the classic general-aviation NACA 2412.
func ExampleParseCode() {
	code, err := naca.ParseCode("2412")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m := code.Metrics()
	fmt.Printf("camber=%.0f%% at %.0f%% chord, thickness=%.0f%%\n",
		m.MaxCamberPct, m.MaxCamberXPct, m.ThicknessPct)
	// Output:
	// camber=2% at 40% chord, thickness=12%
}

// ExampleGenerate samples a unit-chord surface at five stations.
func ExampleGenerate() {
	code, _ := naca.ParseCode("0012")
	g, err := naca.Generate(code, 1.0, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("stations=%d first=%g last=%g\n", g.N(), g.X[0], g.X[g.N()-1])
	// Output:
	// stations=5 first=0 last=1
}
