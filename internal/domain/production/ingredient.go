package production

import "fmt"

// Transport is how a material moves between machines.
type Transport int

const (
	TransportBelt Transport = iota
	TransportPipe
)

func (t Transport) String() string {
	switch t {
	case TransportPipe:
		return "Pipe"
	default:
		return "Belt"
	}
}

// pipeMaterials lists the fluids and gases that move through pipes.
// Every material not listed here travels on belts.
var pipeMaterials = map[string]bool{
	"Alumina Solution":  true,
	"Crude Oil":         true,
	"Fuel":              true,
	"Heavy Oil Residue": true,
	"Ionised Fuel":      true,
	"Liquid Biofuel":    true,
	"Nitric Acid":       true,
	"Nitrogen Gas":      true,
	"Rocket Fuel":       true,
	"Sulfuric Acid":     true,
	"Turbofuel":         true,
	"Water":             true,
}

// Ingredient is a signed per-minute flow of a single material.
// Identity is the Part string; two ingredients are the same material
// iff their Part strings match exactly.
type Ingredient struct {
	Part     string
	Quantity float64
}

// Transport classifies the ingredient's material as belt- or
// pipe-transported.
func (i Ingredient) Transport() Transport {
	if pipeMaterials[i.Part] {
		return TransportPipe
	}
	return TransportBelt
}

// Neg returns the ingredient with its quantity negated.
func (i Ingredient) Neg() Ingredient {
	return Ingredient{Part: i.Part, Quantity: -i.Quantity}
}

// Scale returns the ingredient with its quantity multiplied by k.
func (i Ingredient) Scale(k float64) Ingredient {
	return Ingredient{Part: i.Part, Quantity: i.Quantity * k}
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s %.4f/min", i.Part, i.Quantity)
}

// MergeInto accumulates i into list: if list already holds an entry for
// the same part, i's quantity is added to it in place; otherwise a copy
// of i is appended. Returns the updated list. This is the single
// accumulation primitive used everywhere balances are built.
func MergeInto(list []Ingredient, i Ingredient) []Ingredient {
	for n := range list {
		if list[n].Part == i.Part {
			list[n].Quantity += i.Quantity
			return list
		}
	}
	return append(list, i)
}
