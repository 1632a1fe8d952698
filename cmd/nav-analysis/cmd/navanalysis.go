package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arl/meetpoint/internal/atomicfile"
	"github.com/arl/meetpoint/internal/bvh"
	"github.com/arl/meetpoint/internal/navmesh"
	"github.com/arl/meetpoint/internal/regularize"
	"github.com/arl/meetpoint/internal/spawn"
	"github.com/arl/meetpoint/internal/spread"
	"github.com/arl/meetpoint/internal/viscache"
)

var granularityFlag int

var navAnalysisCmd = &cobra.Command{
	Use:   "nav-analysis MAP",
	Short: "run the visibility-spread pipeline for one map",
	Long: `Loads MAP's nav mesh and collision geometry, regularizes the mesh
into a uniform grid, builds the all-pairs visibility and walkability
caches, computes each team's spawn distance to every area, and writes
the merged spread frames to results/MAP.json.`,
	Args: cobra.ExactArgs(1),
	RunE: doNavAnalysis,
}

func init() {
	navAnalysisCmd.Flags().IntVar(&granularityFlag, "granularity", 0, "regularized grid side length (default from config, normally 200)")
	RootCmd.AddCommand(navAnalysisCmd)
}

func doNavAnalysis(cmd *cobra.Command, args []string) error {
	mapName := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	granularity := cfg.Granularity
	if granularityFlag > 0 {
		granularity = granularityFlag
	}

	navPath := filepath.Join(cfg.NavDir, mapName+".json")
	if err := fileExists(navPath); err != nil {
		return fmt.Errorf("nav-analysis: %w", err)
	}
	nav, err := loadNav(navPath)
	if err != nil {
		return err
	}

	visibilityTree, err := loadTriTree(filepath.Join(cfg.TriDir, mapName+".tri"))
	if err != nil {
		return err
	}
	walkabilityTree, err := loadTriTree(filepath.Join(cfg.TriDir, mapName+"-clippings.tri"))
	if err != nil {
		return err
	}
	spawns, err := loadSpawns(filepath.Join(cfg.SpawnsDir, mapName+".json"))
	if err != nil {
		return err
	}

	// Grid tiling first, reachability reconnection second: the
	// walkability cache of spec.md §4.E is keyed by the regularized
	// areas' own ids, so it can only be built (or reloaded) once those
	// ids exist, and the reachability pass (regularize.Connect) then
	// consults that cache instead of querying the BVH per pair.
	regularized, oldToNew := regularize.BuildTiles(nav.Areas, granularity)

	walkabilityCache, err := loadOrBuildCache(
		cachePath(cfg.CachesDir, mapName, granularity, "walkability"),
		func() (*viscache.Cache, error) { return viscache.BuildWalkability(regularized, walkabilityTree) },
	)
	if err != nil {
		return fmt.Errorf("nav-analysis: %w", err)
	}
	regularize.Connect(nav.Areas, regularized, oldToNew, walkabilityCache)

	regularizedNav := navmesh.New(nav.Version, nav.SubVersion, regularized, true)

	visCache, err := loadOrBuildCache(
		cachePath(cfg.CachesDir, mapName, granularity, "visibility"),
		func() (*viscache.Cache, error) { return viscache.BuildVisibility(regularized, visibilityTree) },
	)
	if err != nil {
		return fmt.Errorf("nav-analysis: %w", err)
	}

	distances, err := spawn.ComputeSpawnDistances(regularizedNav, spawns)
	if err != nil {
		return fmt.Errorf("nav-analysis: %w", err)
	}

	checker := spread.CacheChecker{Cache: visCache}
	frames := spread.Generate(distances.CT, distances.T, checker, spread.Fine)

	return writeFrames(filepath.Join(cfg.ResultsDir, mapName+".json"), frames)
}

// cachePath names a cache file by map, granularity and kind
// ("visibility"/"walkability"): the cache is only valid for the
// (map, granularity) pair it was built from, since granularity
// determines the set of regularized area ids the cache is keyed by.
func cachePath(cachesDir, mapName string, granularity int, kind string) string {
	return filepath.Join(cachesDir, fmt.Sprintf("%s-g%d-%s.gob", mapName, granularity, kind))
}

// loadOrBuildCache implements spec.md §4.E's "computed in parallel...
// persisted to a binary file, and reloaded if present": if path already
// exists it is loaded as-is, otherwise build is run and its result is
// persisted atomically for the next run.
func loadOrBuildCache(path string, build func() (*viscache.Cache, error)) (*viscache.Cache, error) {
	if _, err := os.Stat(path); err == nil {
		return viscache.Load(path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	cache, err := build()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := cache.Save(path); err != nil {
		return nil, err
	}
	return cache, nil
}

func loadNav(path string) (*navmesh.Nav, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nav-analysis: open %s: %w", path, err)
	}
	defer f.Close()

	nav, err := navmesh.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("nav-analysis: decode %s: %w", path, err)
	}
	return nav, nil
}

func loadTriTree(path string) (*bvh.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nav-analysis: open %s: %w", path, err)
	}
	defer f.Close()

	tris, err := bvh.LoadTriFile(f)
	if err != nil {
		return nil, fmt.Errorf("nav-analysis: decode %s: %w", path, err)
	}
	return bvh.New(tris), nil
}

func loadSpawns(path string) (*spawn.Spawns, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nav-analysis: open %s: %w", path, err)
	}
	defer f.Close()

	spawns, err := spawn.LoadSpawnsJSON(f)
	if err != nil {
		return nil, fmt.Errorf("nav-analysis: decode %s: %w", path, err)
	}
	return spawns, nil
}

func writeFrames(path string, frames []spread.SpreadFrame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("nav-analysis: create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.Marshal(frames)
	if err != nil {
		return fmt.Errorf("nav-analysis: encode results: %w", err)
	}
	if err := atomicfile.Write(path, data, 0o644); err != nil {
		return fmt.Errorf("nav-analysis: write %s: %w", path, err)
	}
	return nil
}
