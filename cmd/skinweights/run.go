package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skinweights"
	"github.com/katalvlaran/skinweights/adjacency"
	"github.com/katalvlaran/skinweights/diffusion"
	"github.com/katalvlaran/skinweights/edit"
	"github.com/katalvlaran/skinweights/influence"
	"github.com/katalvlaran/skinweights/internal/config"
	"github.com/katalvlaran/skinweights/internal/meshgen"
)

// scene is one generated mesh with its graph, storage and falloff selection.
type scene struct {
	mesh     *meshgen.Mesh
	graph    *adjacency.Graph
	storage  *influence.Storage
	targets  []int32
	falloffs []float32
}

// summary is the op-independent outcome of one kernel call.
type summary struct {
	Updated, Skipped, Emptied, Evicted, Iterations int
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cmd.ErrOrStderr(), cfg)

	sc, err := newScene(cfg)
	if err != nil {
		return err
	}
	sum, err := runOp(cfg.Op, cfg, sc, nil)
	if err != nil {
		return err
	}
	if err := sc.storage.CheckAll(nil); err != nil {
		return fmt.Errorf("invariant check after %s: %w", cfg.Op, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mesh:     %dx%d (%d verts, %d edges)\n",
		sc.mesh.Rows, sc.mesh.Cols, sc.mesh.NumVerts(), sc.mesh.NumEdges())
	fmt.Fprintf(out, "op:       %s\n", cfg.Op)
	fmt.Fprintf(out, "targets:  %d (falloff steps %d)\n", len(sc.targets), cfg.FalloffSteps)
	fmt.Fprintf(out, "updated:  %d\n", sum.Updated)
	fmt.Fprintf(out, "skipped:  %d\n", sum.Skipped)
	fmt.Fprintf(out, "emptied:  %d\n", sum.Emptied)
	fmt.Fprintf(out, "evicted:  %d\n", sum.Evicted)
	if sum.Iterations > 0 {
		fmt.Fprintf(out, "passes:   %d\n", sum.Iterations)
	}
	if g, ok, err := influence.DominantGroup(sc.storage, sc.targets); err == nil && ok {
		fmt.Fprintf(out, "dominant: group %d\n", g)
	}
	ws, _ := sc.storage.Slots(int(sc.mesh.Center()))
	fmt.Fprintf(out, "centre:   %s\n", formatWeights(ws))

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cmd.ErrOrStderr(), cfg)

	out := cmd.OutOrStdout()
	failed := 0
	for _, op := range config.Ops {
		if err := checkOp(op, cfg); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %-8s %v\n", op, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", op)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed", failed, len(config.Ops))
	}

	return nil
}

// checkOp runs op on a fresh scene, verifies every vertex, then undoes the
// call and verifies the storage is restored bit for bit.
func checkOp(op string, cfg *config.Config) error {
	sc, err := newScene(cfg)
	if err != nil {
		return err
	}
	before := &influence.Storage{
		Indices: append([]int32(nil), sc.storage.Indices...),
		Values:  append([]float32(nil), sc.storage.Values...),
	}

	h := influence.NewHistory(influence.DefaultHistoryDepth)
	if _, err := runOp(op, cfg, sc, h); err != nil {
		return err
	}
	if err := sc.storage.CheckAll(nil); err != nil {
		return err
	}
	if _, err := h.Undo(sc.storage); err != nil {
		return err
	}
	for i := range before.Indices {
		if before.Indices[i] != sc.storage.Indices[i] || before.Values[i] != sc.storage.Values[i] {
			return fmt.Errorf("undo left slot %d of vertex %d changed", i%influence.MaxStorage, i/influence.MaxStorage)
		}
	}

	return nil
}

// loadConfig merges defaults, the optional file, SKINWEIGHTS_* variables and
// explicitly set flags, in increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	config.ApplyEnv(cfg)

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Mesh.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("cols") {
		cfg.Mesh.Cols, _ = flags.GetInt("cols")
	}
	if flags.Changed("spacing") {
		cfg.Mesh.Spacing, _ = flags.GetFloat64("spacing")
	}
	if flags.Changed("groups") {
		cfg.Mesh.Groups, _ = flags.GetInt("groups")
	}
	if flags.Changed("jitter") {
		cfg.Mesh.Jitter, _ = flags.GetFloat64("jitter")
	}
	if flags.Changed("op") {
		cfg.Op, _ = flags.GetString("op")
	}
	if flags.Changed("factor") {
		f, _ := flags.GetFloat64("factor")
		if cfg.Op == "smooth" {
			cfg.Smooth.Factor = f
		} else {
			cfg.Edit.Factor = f
		}
	}
	if flags.Changed("iterations") {
		cfg.Smooth.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("group") {
		cfg.Edit.Group, _ = flags.GetInt("group")
	}
	if flags.Changed("target") {
		cfg.Edit.Target, _ = flags.GetFloat64("target")
	}
	if flags.Changed("falloff-steps") {
		cfg.FalloffSteps, _ = flags.GetInt("falloff-steps")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupLogger(w io.Writer, cfg *config.Config) {
	skinweights.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
}

// newScene builds the grid, its graph and gradient weights, and selects the
// centre vertex plus its falloff rings.
func newScene(cfg *config.Config) (*scene, error) {
	opts := []meshgen.Option{meshgen.WithSeed(cfg.Mesh.Seed)}
	if cfg.Mesh.Jitter > 0 {
		opts = append(opts, meshgen.WithJitter(float32(cfg.Mesh.Jitter)))
	}
	m, err := meshgen.Grid(cfg.Mesh.Rows, cfg.Mesh.Cols, float32(cfg.Mesh.Spacing), opts...)
	if err != nil {
		return nil, err
	}
	g, err := adjacency.New(m.NumVerts(), m.Edges, m.Coords)
	if err != nil {
		return nil, err
	}
	s, err := meshgen.Weights(m, cfg.Mesh.Groups)
	if err != nil {
		return nil, err
	}
	if _, err := influence.Normalize(s, nil, influence.MaxInfluence); err != nil {
		return nil, err
	}
	targets, falloffs, err := g.Rings([]int32{m.Center()}, cfg.FalloffSteps)
	if err != nil {
		return nil, err
	}

	skinweights.Logger().Info("scene ready",
		"verts", m.NumVerts(),
		"edges", m.NumEdges(),
		"targets", len(targets),
	)

	return &scene{mesh: m, graph: g, storage: s, targets: targets, falloffs: falloffs}, nil
}

// runOp dispatches op over the scene's selection. A non-nil history receives
// a snapshot of the targets before they change.
func runOp(op string, cfg *config.Config, sc *scene, h *influence.History) (summary, error) {
	if op == "smooth" {
		res, err := diffusion.Smooth(sc.graph, sc.storage, sc.targets, float32(cfg.Smooth.Factor),
			diffusion.WithIterations(cfg.Smooth.Iterations),
			diffusion.WithTargetFactors(sc.falloffs),
			diffusion.WithHistory(h),
		)
		return summary{
			Updated:    res.Updated,
			Skipped:    res.Skipped,
			Emptied:    res.Emptied,
			Iterations: res.Iterations,
		}, err
	}

	var (
		res edit.Result
		err error
	)
	if op == "binarize" {
		res, err = edit.Binarize(sc.storage, sc.targets, edit.WithHistory(h))
	} else {
		mode, perr := edit.ParseMode(op)
		if perr != nil {
			return summary{}, perr
		}
		factors := make([]float32, len(sc.targets))
		for i, f := range sc.falloffs {
			factors[i] = float32(cfg.Edit.Factor) * f
		}
		res, err = edit.Apply(sc.storage, sc.targets, factors, int32(cfg.Edit.Group), mode,
			float32(cfg.Edit.Target), edit.WithHistory(h))
	}
	if err != nil {
		return summary{}, err
	}

	return summary{
		Updated: res.Updated,
		Skipped: res.Skipped,
		Emptied: res.Emptied,
		Evicted: res.Evicted,
	}, nil
}

func formatWeights(ws []influence.Weight) string {
	if len(ws) == 0 {
		return "(empty)"
	}
	s := ""
	for i, w := range ws {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d:%.3f", w.Group, w.Value)
	}
	return s
}
