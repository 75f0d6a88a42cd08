package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/scenacast/internal/cast"
	"github.com/san-kum/scenacast/internal/engine"
	"github.com/san-kum/scenacast/internal/player"
	"github.com/san-kum/scenacast/internal/scenario"
	"github.com/san-kum/scenacast/internal/svg"
	"github.com/san-kum/scenacast/internal/theme"
)

var (
	previewFile string
	themeFile   string
	speed       float64
)

var (
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "scenacast",
		Short:         "create asciinema recordings from a text file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	renderCmd := &cobra.Command{
		Use:   "render [scenario-file]",
		Short: "render a scenario to a recording on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&previewFile, "preview-file", "p", "", "write an SVG preview to this path")
	renderCmd.Flags().StringVar(&themeFile, "theme", "", "theme file for the SVG preview (yaml)")

	playCmd := &cobra.Command{
		Use:   "play [cast-file]",
		Short: "replay a rendered recording in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return player.Play(args[0], speed)
		},
	}
	playCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed factor")

	inspectCmd := &cobra.Command{
		Use:   "inspect [scenario-file]",
		Short: "show event timing for a scenario without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLabel.Render("ERROR:"), err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]

	// pre-flight: both checks happen before any output is produced
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("scenario file %q does not exist", path)
	}
	if previewFile != "" {
		if _, err := os.Stat(previewFile); err == nil {
			return fmt.Errorf("preview file %q already exists", previewFile)
		}
	}

	th := theme.Default()
	if themeFile != "" {
		var err error
		if th, err = theme.Load(themeFile); err != nil {
			return err
		}
	}

	header, err := scenario.ReadHeader(path)
	if err != nil {
		return err
	}

	w := cast.NewWriter(os.Stdout)
	if err := w.WriteHeader(cast.Header{Width: header.Width, Height: header.Height}); err != nil {
		return err
	}

	res, err := renderBody(path, header, w)
	if err != nil {
		return err
	}

	if previewFile != "" {
		return svg.WritePreview(previewFile, res.Preview, th)
	}
	return nil
}

// renderBody is the second pass over the scenario file; the handle is
// released as soon as the run finishes.
func renderBody(path string, header scenario.Header, out cast.Emitter) (*engine.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return engine.New(header, out).Run(f)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("scenario file %q does not exist", path)
	}

	header, err := scenario.ReadHeader(path)
	if err != nil {
		return err
	}

	collector := &cast.Collector{}
	res, err := renderBody(path, header, collector)
	if err != nil {
		return err
	}

	if len(collector.Events) > 1 {
		times := make([]float64, len(collector.Events))
		for i, e := range collector.Events {
			times[i] = e.Time
		}
		graph := asciigraph.Plot(times,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("event time (s) vs event index"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	stat := func(label, value string) {
		fmt.Printf("%s %s\n", labelStyle.Render(label), valueStyle.Render(value))
	}
	stat("step:         ", fmt.Sprintf("%.3fs", header.Step))
	stat("terminal:     ", fmt.Sprintf("%dx%d", header.Width, header.Height))
	stat("body lines:   ", fmt.Sprintf("%d", res.Lines))
	stat("events:       ", fmt.Sprintf("%d", res.Events))
	stat("preview rows: ", fmt.Sprintf("%d", len(res.Preview)))
	stat("duration:     ", fmt.Sprintf("%.2fs", res.End))
	return nil
}
