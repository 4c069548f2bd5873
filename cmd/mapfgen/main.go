// Command mapfgen prepares MAPF benchmark inputs in two phases:
//
//  1. convert every ASCII map under maps_dir into a binary grid in
//     grids_dir ("<stem>_binary.map");
//  2. generate one scenario file per (grid, agent-count) pair under
//     scenarios_dir, named "<agents>_<stem>_scenario.txt".
//
// Each scenario job draws from an independently derived RNG stream, so a
// run is reproducible from its base seed alone and jobs never correlate.
// A job that fails for lack of connected free capacity is logged and
// skipped; malformed files and I/O failures abort the run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/danwein8/mapfbench/mapgrid"
	"github.com/danwein8/mapfbench/scenario"
)

const (
	mapSuffix  = ".map"
	gridSuffix = "_binary.map"
)

func main() {
	logger := log.New(os.Stderr, "mapfgen: ", 0)

	var (
		configPath  = flag.String("config", "", "YAML run config (optional)")
		mapsDir     = flag.String("maps", "", "override maps_dir")
		gridsDir    = flag.String("grids", "", "override grids_dir")
		outDir      = flag.String("out", "", "override scenarios_dir")
		agentsFlag  = flag.String("agents", "", "override agent counts, e.g. 10,20,30")
		seed        = flag.Int64("seed", 0, "base seed; 0 seeds from the clock")
		convertOnly = flag.Bool("convert-only", false, "stop after map conversion")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			logger.Fatal(err)
		}
	}
	if *mapsDir != "" {
		cfg.MapsDir = *mapsDir
	}
	if *gridsDir != "" {
		cfg.GridsDir = *gridsDir
	}
	if *outDir != "" {
		cfg.ScenariosDir = *outDir
	}
	if *agentsFlag != "" {
		counts, err := parseAgentCounts(*agentsFlag)
		if err != nil {
			logger.Fatal(err)
		}
		cfg.AgentCounts = counts
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *convertOnly {
		cfg.ConvertOnly = true
	}
	if err := cfg.validate(); err != nil {
		logger.Fatal(err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg Config, logger *log.Logger) error {
	if err := convertMaps(cfg, logger); err != nil {
		return err
	}
	if cfg.ConvertOnly {
		return nil
	}

	return generateScenarios(cfg, logger)
}

// convertMaps converts every *.map under cfg.MapsDir into a binary grid.
func convertMaps(cfg Config, logger *log.Logger) error {
	if err := os.MkdirAll(cfg.GridsDir, 0o755); err != nil {
		return err
	}
	maps, err := filepath.Glob(filepath.Join(cfg.MapsDir, "*"+mapSuffix))
	if err != nil {
		return err
	}
	sort.Strings(maps)
	for _, path := range maps {
		stem := strings.TrimSuffix(filepath.Base(path), mapSuffix)
		outPath := filepath.Join(cfg.GridsDir, stem+gridSuffix)
		g, err := mapgrid.ConvertMap(path, outPath)
		if err != nil {
			return err
		}
		logger.Printf("converted %s (%dx%d, %d free cells) -> %s",
			path, g.Width(), g.Height(), g.FreeCells(), outPath)
	}

	return nil
}

// generateScenarios emits one scenario file per (grid, agent-count) pair.
// Job seeds are derived from the base seed with one stream id per job, so
// the whole batch is reproducible from the base seed alone.
func generateScenarios(cfg Config, logger *log.Logger) error {
	if err := os.MkdirAll(cfg.ScenariosDir, 0o755); err != nil {
		return err
	}
	grids, err := filepath.Glob(filepath.Join(cfg.GridsDir, "*"+gridSuffix))
	if err != nil {
		return err
	}
	sort.Strings(grids)
	if len(grids) == 0 {
		return fmt.Errorf("no %s files under %s", gridSuffix, cfg.GridsDir)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	logger.Printf("base seed %d", baseSeed)

	var job uint64
	for _, gridPath := range grids {
		stem := strings.TrimSuffix(filepath.Base(gridPath), gridSuffix)
		for _, agents := range cfg.AgentCounts {
			outPath := filepath.Join(cfg.ScenariosDir, scenario.FileName(agents, stem))
			jobSeed := scenario.DeriveSeed(baseSeed, job)
			job++

			err := scenario.GenerateFile(gridPath, agents, outPath, scenario.WithSeed(jobSeed))
			switch {
			case errors.Is(err, scenario.ErrInsufficientCapacity):
				// Fatal for this job only; the rest of the batch continues.
				logger.Printf("skipping %s for %d agents: %v", stem, agents, err)
			case err != nil:
				return err
			default:
				logger.Printf("wrote %s", outPath)
			}
		}
	}

	return nil
}
