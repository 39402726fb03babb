// Command pathcheck runs the movement engine's path searches against a
// YAML map fixture and reports the results. Queries marked must_reach that
// fail to produce a complete path make the tool exit nonzero, so fixture
// regressions can gate CI.
//
// Usage:
//
//	go run ./cmd/pathcheck -config config/pathcheck.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/jxqgo/internal/config"
	"github.com/udisondev/jxqgo/internal/game/geo"
)

func main() {
	configPath := flag.String("config", "config/pathcheck.yaml", "pathcheck config file")
	verbose := flag.Bool("v", false, "log every path tile")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if err := run(*configPath, *verbose); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type result struct {
	query   config.PathQuery
	path    []geo.Tile
	reached bool
}

func run(configPath string, verbose bool) error {
	cfg, err := config.LoadPathCheck(configPath)
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"map", fmt.Sprintf("%dx%d", cfg.Map.Columns, cfg.Map.Rows),
		"queries", len(cfg.Queries),
		"workers", cfg.Workers)

	terrain, err := buildTerrain(cfg.Map)
	if err != nil {
		return fmt.Errorf("building terrain: %w", err)
	}

	results := make([]result, len(cfg.Queries))

	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i, q := range cfg.Queries {
		g.Go(func() error {
			pathType, err := geo.ParsePathType(q.PathType)
			if err != nil {
				return fmt.Errorf("query %q: %w", q.Name, err)
			}
			dirCount := q.DirectionCount
			if dirCount == 0 {
				dirCount = 8
			}
			start := geo.Tile{Col: q.Start.Col, Row: q.Start.Row}
			end := geo.Tile{Col: q.End.Col, Row: q.End.Row}

			path := geo.FindPath(start, end, pathType, geo.TerrainObstacles(terrain), dirCount)
			results[i] = result{
				query:   q,
				path:    path,
				reached: len(path) > 0 && path[len(path)-1] == end,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		slog.Info("query done",
			"name", r.query.Name,
			"type", r.query.PathType,
			"tiles", len(r.path),
			"reached", r.reached)
		if verbose {
			for _, t := range r.path {
				slog.Debug("path tile", "name", r.query.Name, "col", t.Col, "row", t.Row)
			}
		}
		if r.query.MustReach && !r.reached {
			slog.Error("must_reach query found no complete path", "name", r.query.Name)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d must_reach queries failed", failed)
	}
	slog.Info("all queries passed")
	return nil
}

func buildTerrain(m config.MapFixture) (*geo.Terrain, error) {
	terrain, err := geo.NewTerrain(m.Columns, m.Rows, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range m.Obstacles {
		terrain.SetBarrier(t.Col, t.Row, geo.BarrierObstacle)
	}
	for _, t := range m.Trans {
		terrain.SetBarrier(t.Col, t.Row, geo.BarrierTrans)
	}
	for _, t := range m.CanOver {
		terrain.SetBarrier(t.Col, t.Row, geo.BarrierCanOver)
	}
	return terrain, nil
}
