package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/robolab/roboscene/internal/config"
	"github.com/robolab/roboscene/internal/store"
	"github.com/robolab/roboscene/internal/viz"
)

var (
	dataDir    string
	configFile string
	frameRate  int
	duration   float64
	recName    string
	zoom       float64
	// plot options
	plotObject string
	plotAxis   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roboscene",
		Short: "3D scene viewer and animation recorder",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive viewer on the default scene.
			return runView(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".roboscene", "data directory")

	viewCmd := &cobra.Command{
		Use:   "view [preset]",
		Short: "interactive live viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	viewCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	viewCmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "camera zoom")

	recordCmd := &cobra.Command{
		Use:   "record [preset]",
		Short: "record an animation clip headlessly",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	recordCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	recordCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	recordCmd.Flags().StringVar(&recName, "name", "a", "animation slot name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRecordings,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [rec_id]",
		Short: "plot an object's recorded trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRecording,
	}
	plotCmd.Flags().StringVar(&plotObject, "object", "", "object path (defaults to the first recorded object)")
	plotCmd.Flags().StringVar(&plotAxis, "axis", "y", "axis to plot: x, y or z")

	exportCmd := &cobra.Command{
		Use:   "export [rec_id]",
		Short: "export a recording as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportStdout(args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(viewCmd, recordCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig picks the scene config: preset argument, then config file,
// then the built-in default. CLI flags override file values.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	preset := ""

	if len(args) > 0 {
		preset = args[0]
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Camera.Zoom = zoom
	}
	return cfg, preset, cfg.Validate()
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, preset, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sc, tree, motions, err := buildScene(context.Background(), cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	return viz.RunLive(sc, tree, motions, st, presetLabel(preset), cfg.FPS)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, preset, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sc, tree, motions, err := buildScene(context.Background(), cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	frames := int(cfg.Duration * float64(cfg.FPS))
	err = sc.AnimateNamed(recName, cfg.FPS, func() error {
		for i := 0; i < frames; i++ {
			motions.Step(float64(i) / float64(cfg.FPS))
			if err := sc.Render(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	clip, ok := tree.Animation("animations/" + recName)
	if !ok {
		return fmt.Errorf("animation %q was not published", recName)
	}

	names := make([]string, 0, len(sc.Objects()))
	for _, o := range sc.Objects() {
		names = append(names, o.Name())
	}
	id, err := st.Save(recName, preset, names, clip)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s: %d frames at %d fps\n", id, clip.Len(), clip.FPS)
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	recs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no recordings")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tFRAMES\tFPS\tRECORDED")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			r.ID, presetLabel(r.Preset), r.Frames, r.FPS, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRecording(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	objectPath := plotObject
	if objectPath == "" {
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		if len(meta.Objects) == 0 {
			return fmt.Errorf("recording %s has no objects", args[0])
		}
		objectPath = meta.Objects[0]
	}

	points, err := st.LoadTrajectory(args[0], objectPath)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no trajectory for object %q", objectPath)
	}

	series := make([]float64, len(points))
	for i, p := range points {
		switch plotAxis {
		case "x":
			series[i] = p.Pos.X
		case "y":
			series[i] = p.Pos.Y
		case "z":
			series[i] = p.Pos.Z
		default:
			return fmt.Errorf("unknown axis %q (use x, y or z)", plotAxis)
		}
	}

	caption := fmt.Sprintf("%s: %s.%s over %d frames", args[0], objectPath, plotAxis, len(series))
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(15), asciigraph.Width(72), asciigraph.Caption(caption)))
	return nil
}

func presetLabel(preset string) string {
	if preset == "" {
		return "custom"
	}
	return preset
}
