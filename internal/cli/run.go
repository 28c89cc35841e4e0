package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/forPelevin/scenecut/internal/config"
	"github.com/forPelevin/scenecut/internal/pipeline"
	"github.com/forPelevin/scenecut/internal/types"
)

func run(cmd *cobra.Command, input string) error {
	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	file, err := config.Load(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg := buildConfig(cmd, file)
	cfg.Input = absIn

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(os.Stderr, "", log.Ltime)
	if verbose {
		cfg.Logf = logger.Printf
	} else {
		cfg.Logf = progressOnly(logger)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	return pipeline.Run(ctx, cfg)
}

// buildConfig layers flag defaults, the settings file, and explicit flags,
// in that order.
func buildConfig(cmd *cobra.Command, file *config.File) pipeline.Config {
	policy, _ := cmd.Flags().GetString("policy")
	noAuto, _ := cmd.Flags().GetBool("no-auto-adjust")

	cfg := pipeline.Config{
		Duration:      flagFloat(cmd, "duration"),
		PicThreshold:  flagFloat(cmd, "pic-th"),
		PixThreshold:  flagFloat(cmd, "pix-th"),
		SceneLimit:    flagFloat(cmd, "scene-limit"),
		IntroLimit:    flagFloat(cmd, "intro-limit"),
		MergeSpec:     flagString(cmd, "merge"),
		White:         flagBool(cmd, "white"),
		Policy:        types.Policy(policy),
		DeferLimit:    flagFloat(cmd, "defer-limit"),
		MaxTransition: flagFloat(cmd, "max-transition"),
		AutoAdjust:    !noAuto,
		OutDir:        flagString(cmd, "out"),
		CatalogPath:   flagString(cmd, "catalog"),
		FFmpegPath:    os.Getenv("SCENECUT_FFMPEG"),
		FFprobePath:   os.Getenv("SCENECUT_FFPROBE"),
	}

	// Settings file fills in everything the flags left at defaults.
	applyFloat(cmd, "duration", file.Duration, &cfg.Duration)
	applyFloat(cmd, "pic-th", file.PicThreshold, &cfg.PicThreshold)
	applyFloat(cmd, "pix-th", file.PixThreshold, &cfg.PixThreshold)
	applyFloat(cmd, "scene-limit", file.SceneLimit, &cfg.SceneLimit)
	applyFloat(cmd, "intro-limit", file.IntroLimit, &cfg.IntroLimit)
	applyString(cmd, "merge", file.Merge, &cfg.MergeSpec)
	applyBool(cmd, "white", file.White, &cfg.White)
	applyFloat(cmd, "defer-limit", file.DeferLimit, &cfg.DeferLimit)
	applyFloat(cmd, "max-transition", file.MaxTransition, &cfg.MaxTransition)
	applyString(cmd, "out", file.OutDir, &cfg.OutDir)
	applyString(cmd, "catalog", file.Catalog, &cfg.CatalogPath)
	if !cmd.Flags().Changed("policy") && file.Policy != nil {
		cfg.Policy = types.Policy(*file.Policy)
	}
	if !cmd.Flags().Changed("no-auto-adjust") && file.AutoAdjust != nil {
		cfg.AutoAdjust = *file.AutoAdjust
	}
	if cfg.FFmpegPath == "" && file.FFmpegPath != nil {
		cfg.FFmpegPath = *file.FFmpegPath
	}
	if cfg.FFprobePath == "" && file.FFprobePath != nil {
		cfg.FFprobePath = *file.FFprobePath
	}
	return cfg
}

// progressOnly keeps the default output quiet: only the cutting and summary
// lines are shown.
func progressOnly(logger *log.Logger) func(string, ...any) {
	return func(format string, args ...any) {
		if strings.HasPrefix(format, "cutting") || strings.HasPrefix(format, "manifest") {
			logger.Printf(format, args...)
		}
	}
}

func flagFloat(cmd *cobra.Command, name string) float64 {
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func applyFloat(cmd *cobra.Command, name string, from *float64, to *float64) {
	if !cmd.Flags().Changed(name) && from != nil {
		*to = *from
	}
}

func applyString(cmd *cobra.Command, name string, from *string, to *string) {
	if !cmd.Flags().Changed(name) && from != nil {
		*to = *from
	}
}

func applyBool(cmd *cobra.Command, name string, from *bool, to *bool) {
	if !cmd.Flags().Changed(name) && from != nil {
		*to = *from
	}
}
