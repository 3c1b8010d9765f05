package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/hmaarrfk/nifty/cgc"
	"github.com/hmaarrfk/nifty/cliconfig"
	"github.com/hmaarrfk/nifty/mincut"
)

var (
	runConfigPath         string
	runInputPath          string
	runOutputPath         string
	runBackend            string
	runLocalSearchRestarts int
	runNoCutPhase         bool
	runNoGlueAndCutPhase  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run CGC over an edge-list graph",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to a cliconfig file (yaml/json/toml)")
	runCmd.Flags().StringVarP(&runInputPath, "input", "i", "", "path to an edge-list file (u v weight per line)")
	runCmd.Flags().StringVarP(&runOutputPath, "output", "o", "", "path to write the resulting node labels")
	runCmd.Flags().StringVar(&runBackend, "backend", "", "mincut solver backend: bruteforce or localsearch")
	runCmd.Flags().IntVar(&runLocalSearchRestarts, "restarts", 0, "local-search restart count (0 uses config default)")
	runCmd.Flags().BoolVar(&runNoCutPhase, "no-cut-phase", false, "disable the cut phase")
	runCmd.Flags().BoolVar(&runNoGlueAndCutPhase, "no-glue-and-cut-phase", false, "disable the glue-and-cut phase")
}

func runRun(c *cobra.Command, args []string) error {
	cfg, err := cliconfig.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("cgc run: %w", err)
	}
	if runInputPath != "" {
		cfg.Input.EdgeListPath = runInputPath
	}
	if runOutputPath != "" {
		cfg.Output.LabelsPath = runOutputPath
	}
	if runBackend != "" {
		cfg.Solver.Backend = runBackend
	}
	if runLocalSearchRestarts > 0 {
		cfg.Solver.LocalSearchRestarts = runLocalSearchRestarts
	}
	if runNoCutPhase {
		cfg.Solver.DoCutPhase = false
	}
	if runNoGlueAndCutPhase {
		cfg.Solver.DoGlueAndCutPhase = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("cgc run: %w", err)
	}

	base, weights, err := loadEdgeList(cfg.Input.EdgeListPath)
	if err != nil {
		return fmt.Errorf("cgc run: %w", err)
	}

	var factory mincut.Factory
	switch cfg.Solver.Backend {
	case "localsearch":
		factory = mincut.NewLocalSearchFactory(cfg.Solver.LocalSearchRestarts)
	default:
		factory = mincut.NewBruteForceFactory()
	}

	settings := cgc.Settings{
		DoCutPhase:        cfg.Solver.DoCutPhase,
		DoGlueAndCutPhase: cfg.Solver.DoGlueAndCutPhase,
		MincutFactory:     factory,
	}
	driver := cgc.New(base, weights, settings)

	labels := make(cgc.NodeLabels, base.NodeIDUpperBound())
	visitor := cgc.NewLogVisitor(GetLogger())
	if err := driver.Optimize(labels, visitor); err != nil {
		return fmt.Errorf("cgc run: %w", err)
	}

	fmt.Printf("final energy: %.6f\n", driver.CurrentBestEnergy())
	return writeLabels(cfg.Output.LabelsPath, labels)
}

// loadEdgeList parses "u v weight" lines (whitespace-separated) into a
// basegraph.Graph plus a matching edge-weight map, allocating nodes 0..N-1
// for the largest node id referenced.
func loadEdgeList(path string) (*basegraph.Graph, *basegraph.EdgeMap[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()

	type rawEdge struct {
		u, v int
		w    float64
	}
	var edges []rawEdge
	maxNode := -1

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("edge list: expected \"u v weight\", got %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("edge list: bad node id %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("edge list: bad node id %q: %w", fields[1], err)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("edge list: bad weight %q: %w", fields[2], err)
		}
		edges = append(edges, rawEdge{u: u, v: v, w: w})
		if u > maxNode {
			maxNode = u
		}
		if v > maxNode {
			maxNode = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read edge list: %w", err)
	}

	g := basegraph.NewGraph()
	for i := 0; i <= maxNode; i++ {
		g.AddNode()
	}
	weights := basegraph.NewEdgeMap[float64](len(edges), 0)
	for _, e := range edges {
		id := g.AddEdge(e.u, e.v)
		weights.Set(id, e.w)
	}
	return g, weights, nil
}

func writeLabels(path string, labels cgc.NodeLabels) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	for node, label := range labels {
		if _, err := fmt.Fprintf(w, "%d %d\n", node, label); err != nil {
			return fmt.Errorf("write labels: %w", err)
		}
	}
	return nil
}
