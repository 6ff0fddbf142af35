package cli

import (
	"fmt"
	"math"

	"github.com/andrescamacho/satisplan-go/internal/domain/blueprint"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

// printIngredient renders one catalog-rate ingredient line with its
// transport kind.
func printIngredient(i production.Ingredient) {
	fmt.Printf("(%-4s)  %-27s %15.4f\n", i.Transport(), i.Part, i.Quantity)
}

// printScaledIngredient renders an ingredient at a modified rate.
func printScaledIngredient(i production.Ingredient, modifier float64) {
	fmt.Printf("  %-31s %11.3f\n", i.Part, modifier*i.Quantity)
}

// displayBlueprint renders the full sizing report for one recipe:
// catalog rates, transport analysis, and the suggested build at whole-
// build, per-box and per-machine granularity.
func displayBlueprint(r *production.Recipe, s *blueprint.Suggestion) {
	fmt.Printf("\n%-12s%39s\n", r.Building, r.Name)

	fmt.Println("\n  --  IN  --")
	for _, i := range r.Inputs() {
		printIngredient(i)
	}
	fmt.Println("\n  -- OUT  --")
	for _, i := range r.Outputs() {
		printIngredient(i)
	}

	fmt.Println("\n  -- CALC --")
	maxBelt, maxPipe := r.MaxTransportRates()
	if s.UseBelt {
		fmt.Printf("Max belt use: %8g\n", maxBelt)
	}
	if s.UsePipe {
		fmt.Printf("Max pipe use: %8g\n", maxPipe)
	}
	if s.UseBelt {
		fmt.Printf("Num of %s per belt: %8.4f\n", r.Building, s.MachinesPerBelt)
	}
	if s.UsePipe {
		fmt.Printf("Num of %s per pipe: %8.4f\n", r.Building, s.MachinesPerPipe)
	}

	printParts := func(modifier float64) {
		fmt.Println("Out:")
		for _, i := range r.Outputs() {
			printScaledIngredient(i, modifier)
		}
		fmt.Println("In:")
		for _, i := range r.Inputs() {
			printScaledIngredient(i, modifier)
		}
	}

	fmt.Println("\n  --  BP  --")
	fmt.Printf("%s [%.0f]\n", r.Name, s.Boxes)
	fmt.Printf("Num %s per BP instance: %g\n", r.Building, s.PreferredMultiple)
	fmt.Printf("Clock: %5.2f %%\n", s.Clock*100)
	fmt.Printf("Power use: %5.2f MW\n", s.PowerUsageMW)
	printParts(s.ThroughputModifier())
	if s.Boxes > 1.0001 {
		fmt.Printf("\n%34s\n", "Per BP Instance")
		printParts(s.Clock * s.PreferredMultiple)
	}
	fmt.Printf("\n%34s\n", fmt.Sprintf("Per %s", r.Building))
	printParts(s.Clock)
}

// displayChain renders the per-group chain report: every allocated
// recipe with its scale, the group's direct inputs and declared
// outputs, and the balance split into abundance and paucity.
func displayChain(groups []*production.Group) {
	for _, g := range groups {
		header := fmt.Sprintf("---------- %s ----------", g.Name)
		fmt.Printf("%s\n", center(header, 64))

		for _, sr := range g.Recipes {
			buildingScale := fmt.Sprintf("%s * %.3f", sr.Recipe.Building, sr.Scale)
			fmt.Printf("\n%-31s %32s\n", sr.Recipe.Name, buildingScale)

			pmf := sr.Recipe.PerMinuteFactor()
			fmt.Println("Out:")
			for _, i := range sr.Recipe.Outputs() {
				printChainIngredient(i, sr.Scale, pmf)
			}
			fmt.Println("In:")
			for _, i := range sr.Recipe.Inputs() {
				printChainIngredient(i, sr.Scale, pmf)
			}
			fmt.Printf("\n%s\n", center("_ _ _ _ _ _ _ _ _ _ _ _", 64))
		}

		fmt.Println("\nINPUTS")
		fmt.Println()
		for _, i := range g.Inputs {
			printScaledIngredient(i, 1.0)
		}
		fmt.Println("\nOUTPUTS")
		fmt.Println()
		for _, i := range g.Outputs {
			printScaledIngredient(i, 1.0)
		}
		fmt.Println("\nABUNDANCE")
		fmt.Println()
		for _, i := range g.Abundance() {
			printScaledIngredient(i, 1.0)
		}
		fmt.Println("\nPAUCITY")
		fmt.Println()
		for _, i := range g.Paucity() {
			printScaledIngredient(i, -1.0)
		}
	}
}

// printChainIngredient renders one recipe ingredient inside a chain
// report: the whole per-craft count, the catalog rate, and the rate at
// the allocated scale.
func printChainIngredient(i production.Ingredient, scale, perMinuteFactor float64) {
	perCraft := math.Round(i.Quantity * perMinuteFactor)
	scaled := fmt.Sprintf("[%.3f]", i.Quantity*scale)
	fmt.Printf(" %4.0f %-31s %10.3f %15s\n", perCraft, i.Part, i.Quantity, scaled)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return fmt.Sprintf("%*s%s%*s", left, "", s, right, "")
}
