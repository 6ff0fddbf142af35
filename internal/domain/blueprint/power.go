package blueprint

import "math"

// clockPowerExponent approximates the game's power curve: draw scales
// with clock^log2(2.5).
var clockPowerExponent = math.Log2(2.5)

// maxClock is the domain bound of the power curve; clocks at or above
// it (or at or below zero) are rejected.
const maxClock = 2.5

// basePowerMW is the nameplate draw of one machine at 100% clock.
var basePowerMW = map[string]float64{
	"Smelter":      4.0,
	"Constructor":  4.0,
	"Assembler":    15.0,
	"Manufacturer": 55.0,
	"Refinery":     30.0,
	"Foundry":      16.0,
	"Packager":     10.0,
	"Blender":      75.0,
}

// BasePowerMW returns the per-machine draw at full clock for a
// building type.
func BasePowerMW(building string) (float64, error) {
	p, ok := basePowerMW[building]
	if !ok {
		return 0, &ErrNoBasePower{Building: building}
	}
	return p, nil
}

// PowerUsageMW computes the total draw of the given number of machines
// of a building type running at the given clock fraction.
func PowerUsageMW(building string, machines, clock float64) (float64, error) {
	if clock <= 0 || clock >= maxClock {
		return 0, &ErrClockOutOfRange{Clock: clock}
	}
	base, err := BasePowerMW(building)
	if err != nil {
		return 0, err
	}
	return machines * base * math.Pow(clock, clockPowerExponent), nil
}
