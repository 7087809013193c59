package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/filetools-go/internal/app"
	"github.com/ukaji3/filetools-go/internal/config"
	"github.com/ukaji3/filetools-go/pkg/filetools/imageconv"
)

func (c *cli) newImageCmd() *cobra.Command {
	var req app.ImageRequest

	cmd := &cobra.Command{
		Use:   "image INPUT",
		Short: "Resize an image and convert it to JPEG, PNG or WebP",
		Long: fmt.Sprintf(`image resizes an image and writes <name>_converted.<ext>.
With only --width or --height the other side follows the aspect ratio
unless --keep-aspect=false. Accepted inputs: JPEG, PNG, GIF, WebP, BMP, TIFF.

Presets:
%s`, presetHelp()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindImageFlags(cmd.Flags(), c.cfg)

			if err := c.finishConfig(cmd); err != nil {
				return err
			}

			if err := imageconv.Startup(); err != nil {
				return err
			}
			defer imageconv.Shutdown()

			transformer, err := imageconv.NewTransformer()
			if err != nil {
				return err
			}

			req.Input = args[0]
			_, _, err = app.ExecuteImage(cmd.Context(), c.env, transformer, req)

			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&req.Width, "width", 0, "target width in pixels (default: source width)")
	flags.IntVar(&req.Height, "height", 0, "target height in pixels (default: source height)")
	flags.StringVar(&req.Preset, "preset", "", "dimension preset, see above")
	flags.Int("quality", imageconv.DefaultQuality, "encoder quality, 10-100")
	flags.String("format", string(imageconv.FormatJPEG), "output format: jpeg, png, webp")
	flags.Bool("keep-aspect", true, "keep the source aspect ratio when only one side is given")
	flags.StringP("output", "o", "", "directory for the converted file (default: next to the input)")

	return cmd
}

func bindImageFlags(flags *pflag.FlagSet, cfg *config.Config) {
	bindOutputFlag(flags, cfg)

	if flag := flags.Lookup("quality"); flag != nil && flag.Changed {
		cfg.Image.Quality, _ = flags.GetInt("quality")
	}

	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		cfg.Image.Format, _ = flags.GetString("format")
	}

	if flag := flags.Lookup("keep-aspect"); flag != nil && flag.Changed {
		cfg.Image.MaintainAspectRatio, _ = flags.GetBool("keep-aspect")
	}
}

func presetHelp() string {
	var b strings.Builder
	for _, p := range imageconv.Presets {
		fmt.Fprintf(&b, "  %-26s %dx%d\n", p.Name, p.Width, p.Height)
	}

	return strings.TrimRight(b.String(), "\n")
}
