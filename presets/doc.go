// Package presets carries the curated airfoil catalog served to UI
// layers: a fixed, ordered list of NACA 4-digit configurations with
// labels, suggested angles of attack, tags and derived geometric metrics.
//
// The catalog is static data, not computation — storage and editing of
// presets belong to external layers. Lookup is by stable id ("naca-2412").
//
// ⚙️ Usage:
//
//	for _, p := range presets.List() {
//	  fmt.Println(p.ID, p.Label, p.Metrics.ThicknessPct)
//	}
//	geom, err := presets.Generate("naca-0012", 1.0, 200)
package presets
