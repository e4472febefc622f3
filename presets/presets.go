package presets

import (
	"errors"
	"fmt"

	"github.com/dallen2021/AeroStack/naca"
)

// ErrUnknownPreset indicates a lookup for an id the catalog does not hold.
var ErrUnknownPreset = errors.New("presets: unknown airfoil preset")

// FamilyNACA4 is the only family the current catalog carries.
const FamilyNACA4 = "naca4"

// Preset describes one curated airfoil configuration.
type Preset struct {
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	Family       string       `json:"family"`
	Description  string       `json:"description"`
	DefaultAlpha float64      `json:"default_alpha"`
	Digits       string       `json:"digits"`
	Tags         []string     `json:"tags"`
	Metrics      naca.Metrics `json:"metrics"`
}

// catalog is the ordered source of truth. Metrics are filled in at init
// from the digits, so the table cannot drift from the geometry code.
var catalog = []Preset{
	{ID: "naca-0012", Label: "NACA 0012", Digits: "0012", DefaultAlpha: 4.0,
		Description: "Symmetric baseline airfoil common in wind-tunnel benchmarks.",
		Tags:        []string{"symmetric", "benchmark"}},
	{ID: "naca-0018", Label: "NACA 0018", Digits: "0018", DefaultAlpha: 4.0,
		Description: "Thick symmetric profile useful for vertical tails and flying wings.",
		Tags:        []string{"symmetric", "thick"}},
	{ID: "naca-1408", Label: "NACA 1408", Digits: "1408", DefaultAlpha: 3.0,
		Description: "Lightly cambered thin section for sailplanes and low-Reynolds applications.",
		Tags:        []string{"glider", "low-Re"}},
	{ID: "naca-2309", Label: "NACA 2309", Digits: "2309", DefaultAlpha: 3.5,
		Description: "Classic mild-camber wing section suited for trainers and UAVs.",
		Tags:        []string{"trainer", "balanced"}},
	{ID: "naca-2412", Label: "NACA 2412", Digits: "2412", DefaultAlpha: 4.0,
		Description: "Popular general aviation airfoil with moderate camber.",
		Tags:        []string{"general-aviation", "cambered"}},
	{ID: "naca-3415", Label: "NACA 3415", Digits: "3415", DefaultAlpha: 2.5,
		Description: "High-camber wing section prioritizing maximum lift at low speeds.",
		Tags:        []string{"short-takeoff", "high-lift"}},
	{ID: "naca-4412", Label: "NACA 4412", Digits: "4412", DefaultAlpha: 2.0,
		Description: "High-camber airfoil suited for low-speed lift-focused designs.",
		Tags:        []string{"high-lift", "trainer"}},
	{ID: "naca-4415", Label: "NACA 4415", Digits: "4415", DefaultAlpha: 2.0,
		Description: "Thicker variant of the 4412 offering extra structural depth.",
		Tags:        []string{"high-lift", "thick"}},
	{ID: "naca-6312", Label: "NACA 6312", Digits: "6312", DefaultAlpha: 1.5,
		Description: "Laminar-friendly section with camber pushed forward for smoother flow.",
		Tags:        []string{"laminar", "forward-camber"}},
	{ID: "naca-6409", Label: "NACA 6409", Digits: "6409", DefaultAlpha: 0.0,
		Description: "Laminar-flow oriented section with forward camber.",
		Tags:        []string{"laminar", "forward-camber"}},
	{ID: "naca-9306", Label: "NACA 9306", Digits: "9306", DefaultAlpha: 0.0,
		Description: "Extreme camber concept showcasing aggressive low-speed performance.",
		Tags:        []string{"concept", "experimental"}},
}

var byID = make(map[string]int, len(catalog))

func init() {
	for i := range catalog {
		catalog[i].Family = FamilyNACA4
		code, err := naca.ParseCode(catalog[i].Digits)
		if err != nil {
			panic(fmt.Sprintf("presets: catalog entry %q: %v", catalog[i].ID, err))
		}
		catalog[i].Metrics = code.Metrics()
		byID[catalog[i].ID] = i
	}
}

// List returns the catalog in its curated order. The slice is a copy;
// mutating it cannot corrupt the catalog.
func List() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)

	return out
}

// Get returns the preset with the given id.
//
// Errors: ErrUnknownPreset, wrapped with the id.
func Get(id string) (Preset, error) {
	i, ok := byID[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}

	return catalog[i], nil
}

// Generate produces the surface geometry for the preset with the given id.
func Generate(id string, chord float64, n int) (*naca.Geometry, error) {
	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	code, err := naca.ParseCode(p.Digits)
	if err != nil {
		return nil, err
	}

	return naca.Generate(code, chord, n)
}
