package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "scenecut <input>",
		Short:        "Split a video into scenes at keyframe-snapped black transitions",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().Float64("duration", 0.5, "Minimum black segment duration in seconds")
	root.Flags().Float64("pic-th", 0.98, "Picture black ratio threshold (0-1)")
	root.Flags().Float64("pix-th", 0.2, "Pixel brightness threshold (0-1)")
	root.Flags().Float64("scene-limit", 300, "Minimum scene length in seconds")
	root.Flags().Float64("intro-limit", 180, "Upper time limit for the intro in seconds")
	root.Flags().String("merge", "", "Scenes to merge, e.g. '3-5,6-7' (0 is the intro)")
	root.Flags().Bool("white", false, "Detect white transitions instead of black")
	root.Flags().String("policy", "earliest", "Split selection policy: earliest or defer")
	root.Flags().Float64("defer-limit", 30, "Cluster window for the defer policy, seconds")
	root.Flags().String("out", ".", "Output directory")
	root.Flags().String("config", "scenecut.yaml", "Settings file path")
	root.Flags().String("catalog", "", "Record runs in a sqlite catalog at this path")
	root.Flags().BoolP("verbose", "v", false, "Detailed progress output")

	// Auto-refinement tuning (internal)
	root.Flags().Float64("max-transition", 10, "Longest transition trusted without refinement, seconds")
	root.Flags().Bool("no-auto-adjust", false, "Disable refinement of overlong transitions")
	_ = root.Flags().MarkHidden("max-transition")
	_ = root.Flags().MarkHidden("no-auto-adjust")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
