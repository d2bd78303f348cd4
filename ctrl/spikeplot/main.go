package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/celskeggs/spikeplot/ctrl/chart"
	"github.com/celskeggs/spikeplot/ctrl/chart/display"
	"github.com/celskeggs/spikeplot/ctrl/chart/tlplot"
	"github.com/celskeggs/spikeplot/ctrl/flows"
	"github.com/celskeggs/spikeplot/ctrl/util"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "spikeplot",
		Short:         "Plot spiking neuron testbench traces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	util.AddFlags(root.PersistentFlags())
	for _, name := range flows.Commands() {
		root.AddCommand(flowCommand(root, flows.All()[name]))
	}
	return root
}

func flowCommand(root *cobra.Command, flow flows.Flow) *cobra.Command {
	return &cobra.Command{
		Use:   flow.Command + " [csv]",
		Short: flow.Description,
		Long:  fmt.Sprintf("%s.\n\nThe trace defaults to %s.", flow.Description, flow.DefaultPath),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flow.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			v, err := util.NewViper(root.PersistentFlags())
			if err != nil {
				return err
			}
			cfg, err := util.LoadConfig(v)
			if err != nil {
				return err
			}
			log, err := util.NewLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()
			return run(flow, path, cfg, log)
		},
	}
}

func run(flow flows.Flow, path string, cfg util.Config, log *zap.Logger) error {
	renderer := chart.NewRenderer(cfg.Theme(), log)
	fig, _, err := flows.Build(flow, path, cfg.Window, renderer)
	if err != nil {
		return err
	}
	for _, warning := range fig.Warnings {
		log.Warn("rendering continued", zap.Error(warning))
	}
	if cfg.Viewer != "" {
		log.Info("opening external viewer", zap.String("viewer", cfg.Viewer))
		return tlplot.DisplayPlotExternal(fig, fig.Width, fig.Height, cfg.DPI, cfg.Viewer)
	}
	log.Info("displaying figure", zap.String("figure", fig.Name))
	return display.DisplayPlot(fig, fmt.Sprintf("%s: %s", fig.Name, path), fig.Width, fig.Height, cfg.DPI)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spikeplot: %v\n", err)
		os.Exit(1)
	}
}
