package main

import (
	"flag"
	"fmt"
	"math"

	"ramp-metrics/internal/model"
	"ramp-metrics/internal/ramp"
)

// Demo:
// - Build a synthetic two-area, two-year hourly dataset
// - Run the hourly, annual and synthesis paths to show how the pieces fit
func main() {
	hours := flag.Int("hours", 48, "Number of hours to generate per series")
	flag.Parse()

	data := &model.Collection{Areas: syntheticAreas(*hours)}

	hourly, err := ramp.ComputeCollection(data, ramp.Params{TimeStep: model.StepHourly})
	if err != nil {
		panic(err)
	}
	fmt.Printf("Hourly ramps: %d rows, columns %v\n", hourly.Areas.Len(), hourly.Areas.Columns)
	for i := 0; i < min(6, hourly.Areas.Len()); i++ {
		k := hourly.Areas.Keys[i]
		v := hourly.Areas.Values[i]
		fmt.Printf("  %s y%d t%03d  netLoadRamp=%8.2f  balanceRamp=%8.2f  areaRamp=%8.2f\n",
			k.Entity, k.Year, k.TimeID, v[0], v[1], v[2])
	}

	annual, err := ramp.ComputeCollection(data, ramp.Params{TimeStep: model.StepAnnual})
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nAnnual, no synthesis: %d rows, columns %v\n", annual.Areas.Len(), annual.Areas.Columns)

	synth, err := ramp.ComputeCollection(data, ramp.Params{TimeStep: model.StepDaily, Synthesis: true})
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nDaily synthesis: %d rows, columns %v\n", synth.Areas.Len(), synth.Areas.Columns)
	for i := 0; i < min(4, synth.Areas.Len()); i++ {
		k := synth.Areas.Keys[i]
		v := synth.Areas.Values[i]
		fmt.Printf("  %s day%02d  netLoadRamp=%8.2f  min=%8.2f  max=%8.2f\n",
			k.Entity, k.TimeID, v[0], v[1], v[2])
	}
}

// syntheticAreas builds two areas with a daily sinusoidal load shape and a
// small per-year perturbation, so ramps and synthesis have visible structure.
func syntheticAreas(hours int) *model.Table {
	t := model.New(model.KindAreas, true, model.ColBalance, model.ColNetLoad)
	for _, area := range []string{"north", "south"} {
		for year := 1; year <= 2; year++ {
			for h := 1; h <= hours; h++ {
				phase := 2 * math.Pi * float64(h%24) / 24
				netLoad := 1000 + 250*math.Sin(phase) + 20*float64(year)
				balance := 50 * math.Cos(phase+float64(year))
				if area == "south" {
					netLoad *= 0.6
					balance = -balance
				}
				if err := t.Append(model.Key{Entity: area, Year: year, TimeID: h}, balance, netLoad); err != nil {
					panic(err)
				}
			}
		}
	}
	return t
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
