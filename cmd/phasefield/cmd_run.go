package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nvandessel/phasefield/internal/config"
	"github.com/nvandessel/phasefield/internal/imbalance"
	"github.com/nvandessel/phasefield/internal/logging"
	"github.com/nvandessel/phasefield/internal/oscillator"
	"github.com/nvandessel/phasefield/internal/snapshot"
	"github.com/nvandessel/phasefield/internal/topology"
)

// runOutput is the JSON shape emitted by `phasefield run --json`.
type runOutput struct {
	Session   string             `json:"session"`
	Duration  float64            `json:"duration"`
	Dt        float64            `json:"dt"`
	Records   int                `json:"records"`
	Snapshot  *snapshot.Snapshot `json:"snapshot"`
	Imbalance imbalance.Flags    `json:"imbalance"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and report the final field state",
		Long: `Run integrates the coupled oscillator network for the configured
duration and prints the final state snapshot: per-node phases and
activations, coherence scores, the dominant group, and any imbalance
flags raised against the default thresholds.

Configuration is loaded from ~/.phasefield/config.yaml and PHASEFIELD_*
environment variables; command flags override both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			topo, err := resolveTopology(cfg)
			if err != nil {
				return err
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			osc, err := oscillator.New(topo, oscillator.Config{
				BaseFrequency:    cfg.Oscillator.BaseFrequency,
				CouplingStrength: cfg.Oscillator.CouplingStrength,
				Seed:             cfg.Oscillator.Seed,
				Logger:           logger,
			})
			if err != nil {
				return err
			}

			trace := logging.NewTraceLogger(".phasefield", cfg.Logging.Level, osc.ID())
			defer trace.Close()

			// Cancel the simulation loop on Ctrl+C; state stays valid at
			// the last completed step.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			notifySignals(sigCh)
			go func() {
				select {
				case <-sigCh:
					if !jsonOut {
						pterm.Warning.Println("Interrupted, stopping at current step...")
					}
					cancel()
				case <-ctx.Done():
				}
			}()

			err = osc.Simulate(ctx, cfg.Simulation.Duration, cfg.Simulation.Dt, cfg.Simulation.RecordInterval)
			if err != nil && ctx.Err() == nil {
				return err
			}

			for _, rec := range osc.History() {
				trace.Record(map[string]any{
					"event":     "record",
					"t":         rec.Time,
					"coherence": rec.Coherence,
				})
			}

			snap := osc.Snapshot()
			flags := imbalance.Detect(snap, imbalance.DefaultThresholds())

			if jsonOut {
				out := runOutput{
					Session:   osc.ID(),
					Duration:  cfg.Simulation.Duration,
					Dt:        cfg.Simulation.Dt,
					Records:   osc.HistoryLen(),
					Snapshot:  snap,
					Imbalance: flags,
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			renderRun(topo, osc, snap, flags)
			return nil
		},
	}

	cmd.Flags().Float64("duration", 0, "Total simulated time (overrides config)")
	cmd.Flags().Float64("dt", 0, "Integration step size (overrides config)")
	cmd.Flags().Int("record-interval", 0, "Sample history every N steps (overrides config)")
	cmd.Flags().Float64("coupling", -1, "Global coupling strength (overrides config)")
	cmd.Flags().Float64("base-frequency", 0, "Global base frequency (overrides config)")
	cmd.Flags().Uint64("seed", 0, "Phase seeding value for reproducible runs")
	cmd.Flags().String("topology", "", "Path to YAML topology definition")
	cmd.Flags().String("log-level", "", "Log level: info, debug, trace")

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetFloat64("duration"); v > 0 {
		cfg.Simulation.Duration = v
	}
	if v, _ := cmd.Flags().GetFloat64("dt"); v > 0 {
		cfg.Simulation.Dt = v
	}
	if v, _ := cmd.Flags().GetInt("record-interval"); v > 0 {
		cfg.Simulation.RecordInterval = v
	}
	if v, _ := cmd.Flags().GetFloat64("coupling"); v >= 0 && cmd.Flags().Changed("coupling") {
		cfg.Oscillator.CouplingStrength = v
	}
	if v, _ := cmd.Flags().GetFloat64("base-frequency"); v > 0 {
		cfg.Oscillator.BaseFrequency = v
	}
	if cmd.Flags().Changed("seed") {
		v, _ := cmd.Flags().GetUint64("seed")
		cfg.Oscillator.Seed = &v
	}
	if v, _ := cmd.Flags().GetString("topology"); v != "" {
		cfg.Topology = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
}

func resolveTopology(cfg *config.Config) (*topology.Topology, error) {
	if cfg.Topology == "" {
		return topology.Reference(), nil
	}
	return topology.LoadFromFile(cfg.Topology)
}

func renderRun(topo *topology.Topology, osc *oscillator.Oscillator, snap *snapshot.Snapshot, flags imbalance.Flags) {
	pterm.DefaultSection.Println("Field State")

	rows := pterm.TableData{{"Node", "Group", "Phase", "Activation"}}
	for _, n := range topo.Nodes() {
		state := snap.Nodes[n.Name]
		rows = append(rows, []string{
			n.Name,
			state.Group,
			fmt.Sprintf("%.4f", state.Phase),
			fmt.Sprintf("%.4f", state.Activation),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	pterm.DefaultSection.Println("Coherence")
	pterm.Info.Printf("global: %.4f\n", snap.Coherence["global"])
	for _, g := range topo.Groups() {
		pterm.Info.Printf("%s: %.4f (activation %.4f)\n", g.Name, snap.Coherence[g.Name], snap.GroupActivations[g.Name])
	}
	for _, pair := range topo.GroupPairs() {
		key := pair[0] + "_" + pair[1]
		pterm.Info.Printf("%s: %.4f\n", key, snap.Coherence[key])
	}

	pterm.Success.Printf("Dominant group: %s (%d records, session %s)\n", snap.DominantGroup, osc.HistoryLen(), osc.ID())

	if flags.Any() {
		for _, c := range imbalance.Corrections(flags) {
			pterm.Warning.Printf("imbalance correction suggested: %s\n", c)
		}
	}
}
