package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	audiocore "github.com/Skryldev/audio-core"
	"github.com/Skryldev/audio-core/config"
	"github.com/Skryldev/audio-core/pkg/logger"
)

// Dependencies is filled in once global flags are parsed
type Dependencies struct {
	Core   *audiocore.Core
	Config *config.Config
	Logger *logger.Logger
}

type globalFlags struct {
	configPath string
	storeRoot  string
	debug      bool
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "audiocore",
		Short:         "Analyze audio with SRT subtitles and manage saved recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.init(flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if deps.Core != nil {
				deps.Core.Close()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config.toml")
	pf.StringVar(&flags.storeRoot, "store", "", "recordings directory (overrides config)")
	pf.BoolVar(&flags.debug, "debug", false, "enable development logging at debug level")

	rootCmd.AddCommand(NewAnalyzeCmd(deps))
	rootCmd.AddCommand(NewSaveCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewDeleteCmd(deps))
	rootCmd.AddCommand(NewStatCmd(deps))
	rootCmd.AddCommand(NewLatestCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))

	return rootCmd
}

func (d *Dependencies) init(flags globalFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flags.storeRoot != "" {
		cfg.StoreRoot = flags.storeRoot
	}
	if flags.debug {
		cfg.Development = true
		cfg.LogLevel = "debug"
	}

	log, err := logger.New(logger.Options{Development: cfg.Development, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	core, err := audiocore.New(audiocore.Config{
		StoreRoot:     cfg.StoreRoot,
		EnableFFprobe: cfg.EnableFFprobe,
		FFprobePath:   cfg.FFprobePath,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("initializing core: %w", err)
	}

	d.Config = cfg
	d.Logger = log
	d.Core = core
	return nil
}
