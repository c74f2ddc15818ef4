package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ramp-metrics/internal/config"
	"ramp-metrics/internal/model"
	"ramp-metrics/internal/netload"
	"ramp-metrics/internal/ramp"
	"ramp-metrics/internal/study"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "ramp":
		cmdRamp(os.Args[2:])
	case "netload":
		cmdNetLoad(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli ramp --data study.json --step annual --out results")
	fmt.Println("  cli ramp --config run.yaml")
	fmt.Println("  cli netload --data study.json --clusters clusters.json --out netload.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - ramp writes one CSV per present sub-table (areas.csv, districts.csv)")
	fmt.Println("  - netload only derives the netLoad column for the areas table")
}

func cmdRamp(args []string) {
	fs := flag.NewFlagSet("ramp", flag.ExitOnError)
	dataPath := fs.String("data", "study.json", "Path to study JSON export")
	clustersPath := fs.String("clusters", "", "Optional path to cluster descriptions JSON")
	cfgPath := fs.String("config", "", "Optional YAML run config (overrides the other flags)")
	stepName := fs.String("step", "hourly", "Output time step: hourly|daily|weekly|monthly|annual")
	synthesis := fs.Bool("synthesis", false, "Collapse Monte-Carlo years into min/avg/max")
	ignoreMustRun := fs.Bool("ignore-must-run", false, "Exclude must-run generation from net load")
	outDir := fs.String("out", "results", "Output directory")
	_ = fs.Parse(args)

	var params ramp.Params
	input, out := *dataPath, *outDir
	clustersFile := *clustersPath

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		input, out, clustersFile = cfg.Input, cfg.Output, cfg.ClustersFile
		params, err = cfg.Run.ToParams(nil)
		if err != nil {
			panic(err)
		}
	} else {
		step, err := model.ParseTimeStep(*stepName)
		if err != nil {
			panic(err)
		}
		params = ramp.Params{
			TimeStep:      step,
			Synthesis:     *synthesis,
			IgnoreMustRun: *ignoreMustRun,
		}
	}

	params.Clusters = loadClusters(clustersFile)

	data, err := study.LoadStudyJSON(input)
	if err != nil {
		panic(err)
	}

	result, err := ramp.ComputeCollection(data, params)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		panic(err)
	}
	rows := 0
	if result.Areas != nil {
		if err := study.WriteTableCSV(filepath.Join(out, "areas.csv"), result.Areas); err != nil {
			panic(err)
		}
		rows += result.Areas.Len()
	}
	if result.Districts != nil {
		if err := study.WriteTableCSV(filepath.Join(out, "districts.csv"), result.Districts); err != nil {
			panic(err)
		}
		rows += result.Districts.Len()
	}
	fmt.Printf("Wrote %d rows to %s (step=%s synthesis=%v)\n", rows, out, result.TimeStep, result.Synthesis)
}

func cmdNetLoad(args []string) {
	fs := flag.NewFlagSet("netload", flag.ExitOnError)
	dataPath := fs.String("data", "study.json", "Path to study JSON export")
	clustersPath := fs.String("clusters", "", "Optional path to cluster descriptions JSON")
	ignoreMustRun := fs.Bool("ignore-must-run", false, "Exclude must-run generation from net load")
	outPath := fs.String("out", "results/netload.csv", "Output CSV path")
	_ = fs.Parse(args)

	data, err := study.LoadStudyJSON(*dataPath)
	if err != nil {
		panic(err)
	}
	if data.Areas == nil {
		fmt.Println("study has no areas table")
		os.Exit(1)
	}

	derived, err := netload.WithNetLoad(data.Areas, *ignoreMustRun, loadClusters(*clustersPath))
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := study.WriteTableCSV(*outPath, derived); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", derived.Len(), *outPath)
}

func loadClusters(path string) []model.Cluster {
	if path == "" {
		return nil
	}
	list, err := study.LoadClusters(path)
	if err != nil {
		panic(err)
	}
	return list.Clusters
}
