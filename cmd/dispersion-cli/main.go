// Command dispersion-cli is an interactive and batch driver over the
// engine's external interface, mirroring the teacher's robot_cli.go:
// the same package-level *cobra.Command set, the same package-level
// engine handle held across subcommand invocations, and the same
// "any args on os.Args means one-shot, otherwise REPL" split.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dispersion3d/engine"
	"dispersion3d/transport"
)

// Package-level state, held across subcommand invocations the same
// way robot_cli.go holds warehouse/robot_map/viewIsRunning.
var (
	eng          *engine.Engine
	configPath   string
	maxTicks     int
	configLoaded bool
)

var rootCmd = &cobra.Command{
	Use:   "dispersion-cli",
	Short: "A batch and interactive driver for the uniform-dispersion engine",
	Long: `A command-line application that drives the dispersion engine's
grid, robots and ticks, mirroring the external interface a host
program would call directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dispersion-cli invoked. Use the available commands to control the engine.")
	},
}

var initGridCmd = &cobra.Command{
	Use:   "init-grid [x] [y] [z]",
	Short: "Allocate a fresh grid, discarding all robots and metrics",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		x, y, z, err := parseXYZ(args)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		eng.InitGrid(x, y, z)
		fmt.Printf("Grid initialized to %dx%dx%d.\n", x, y, z)
	},
}

var setCellCmd = &cobra.Command{
	Use:   "set-cell [x] [y] [z] [empty|wall|active|settled|door]",
	Short: "Place a cell value",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		x, y, z, err := parseXYZ(args[:3])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		v, err := parseCellValue(args[3])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		eng.SetCell(x, y, z, v)
		fmt.Printf("Cell (%d,%d,%d) set to %s.\n", x, y, z, args[3])
	},
}

var addRobotCmd = &cobra.Command{
	Use:   "add-robot [x] [y] [z]",
	Short: "Add a new active robot",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		x, y, z, err := parseXYZ(args)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		eng.AddRobot(x, y, z)
		fmt.Printf("Robot added at (%d,%d,%d).\n", x, y, z)
	},
}

var setStartCmd = &cobra.Command{
	Use:   "set-start [x] [y] [z]",
	Short: "Move the door to a new cell",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		x, y, z, err := parseXYZ(args)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		eng.SetStartPosition(x, y, z)
		fmt.Printf("Door moved to (%d,%d,%d).\n", x, y, z)
	},
}

var loadMapCmd = &cobra.Command{
	Use:   "load-map [index]",
	Short: "Load a catalog map by index; with no index, lists the catalog",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for i := 0; i < eng.MapCount(); i++ {
				x, y, z := eng.MapSize(i)
				fmt.Printf("%d: %s (%dx%dx%d)\n", i, eng.MapName(i), x, y, z)
			}
			return
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("Error: invalid map index")
			return
		}
		eng.LoadMap(i)
		fmt.Printf("Loaded map %d (%s).\n", i, eng.MapName(i))
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reload the last loaded map and clear metrics",
	Run: func(cmd *cobra.Command, args []string) {
		eng.Reset()
		fmt.Println("Engine reset.")
	},
}

var stepCmd = &cobra.Command{
	Use:   "step [n]",
	Short: "Advance the simulation by n ticks (default 1)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := 1
		if len(args) == 1 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("Error: invalid tick count")
				return
			}
		}
		for i := 0; i < n; i++ {
			eng.Tick()
		}
		fmt.Printf("Advanced %d tick(s). complete=%v\n", n, eng.IsComplete())
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Tick until the simulation completes or --max-ticks is reached",
	Run: func(cmd *cobra.Command, args []string) {
		ticks := 0
		for !eng.IsComplete() && (maxTicks <= 0 || ticks < maxTicks) {
			eng.Tick()
			ticks++
		}
		fmt.Printf("Ran %d tick(s). complete=%v\n", ticks, eng.IsComplete())
	},
}

var cellCmd = &cobra.Command{
	Use:   "cell [x] [y] [z]",
	Short: "Print the externally-visible kind of a cell",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		x, y, z, err := parseXYZ(args)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Println(eng.CellView(x, y, z))
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the scalar metrics of spec.md section 4.C10",
	Run: func(cmd *cobra.Command, args []string) {
		m := eng.MetricsSnapshot()
		fmt.Printf("ticks=%d makespan=%d t_total=%d t_max=%d e_total=%d e_max=%d complete=%v\n",
			m.SimulationSteps, m.Makespan, m.TTotal, m.TMax, m.ETotal, m.EMax, m.Complete)
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Drain pop_event for every known robot id",
	Run: func(cmd *cobra.Command, args []string) {
		for id := 0; id < eng.RobotCount(); id++ {
			packed := eng.PopEvent(id)
			tag, dir := engine.UnpackEvent(packed)
			fmt.Printf("robot %d: %s %s\n", id, tag, dir)
		}
	},
}

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation to completion while serving the websocket telemetry feed",
	Run: func(cmd *cobra.Command, args []string) {
		srv := transport.NewServer(serveAddr, eng, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go srv.Pump(ctx, 100*time.Millisecond)
		go func() {
			for !eng.IsComplete() && (maxTicks <= 0 || eng.SimulationSteps() < maxTicks) {
				eng.Tick()
				time.Sleep(100 * time.Millisecond)
			}
			fmt.Println("simulation complete, feed remains live; Ctrl-C to exit")
		}()

		fmt.Printf("serving telemetry on %s/ws\n", serveAddr)
		if err := srv.Serve(); err != nil {
			fmt.Println("Error:", err)
		}
	},
}

func parseXYZ(args []string) (x, y, z int, err error) {
	x, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid x: %w", err)
	}
	y, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid y: %w", err)
	}
	z, err = strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid z: %w", err)
	}
	return x, y, z, nil
}

func parseCellValue(s string) (engine.CellValue, error) {
	switch strings.ToLower(s) {
	case "empty":
		return engine.PlaceEmpty, nil
	case "wall":
		return engine.PlaceWall, nil
	case "active":
		return engine.PlaceActiveRobot, nil
	case "settled":
		return engine.PlaceSettledRobot, nil
	case "door":
		return engine.PlaceDoor, nil
	default:
		return 0, fmt.Errorf("unknown cell value %q", s)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "stop after this many ticks even if incomplete (0 = unbounded)")
	serveCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "stop ticking after this many ticks (0 = unbounded)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8090", "address to serve the websocket feed on")

	rootCmd.AddCommand(initGridCmd)
	rootCmd.AddCommand(setCellCmd)
	rootCmd.AddCommand(addRobotCmd)
	rootCmd.AddCommand(setStartCmd)
	rootCmd.AddCommand(loadMapCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// --config is a persistent flag, so it is only populated once
		// cobra has parsed the invoked command's flags; build the real
		// engine on the first dispatched command rather than before
		// Execute. Only once: the REPL re-enters Execute for every
		// typed line, and re-running this would wipe live engine state.
		if configLoaded {
			return
		}
		configLoaded = true
		if configPath == "" {
			return
		}
		cfg := engine.LoadConfig(configPath)
		eng = engine.NewEngine(cfg.GridX, cfg.GridY, cfg.GridZ)
		eng.ApplyConfig(cfg)
	}
}

func main() {
	// A default engine so REPL prompts typed before any --config flag
	// is known (there is none in interactive mode) still have a handle.
	cfg := engine.DefaultEngineConfig()
	eng = engine.NewEngine(cfg.GridX, cfg.GridY, cfg.GridZ)
	eng.ApplyConfig(cfg)

	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Interactive dispersion-cli. Type 'exit' to quit.")
	fmt.Println("Use 'help' to see available commands.")
	fmt.Println("---")

	for {
		fmt.Print("> ")

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.ToLower(input) == "exit" {
			fmt.Println("Exiting interactive CLI. Goodbye!")
			return
		}

		args := strings.Split(input, " ")
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
		}
	}
}
