package vortexpanel_test

import (
	"fmt"

	"github.com/dallen2021/AeroStack/naca"
	"github.com/dallen2021/AeroStack/vortexpanel"
)

// ExampleSolve runs the full pipeline for a cambered section at 4°:
// geometry, an 80-panel mesh, and the dense tangency solve.
func ExampleSolve() {
	code, _ := naca.ParseCode("2412")
	geom, _ := naca.Generate(code, 1.0, 400)

	mesh, err := vortexpanel.BuildMesh(geom, 80)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sol, err := vortexpanel.Solve(mesh, 4.0, 1.0, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("panels=%d lifting=%t suspect=%t\n", mesh.P(), sol.CL > 0, sol.IllConditioned)
	// Output:
	// panels=80 lifting=true suspect=false
}
