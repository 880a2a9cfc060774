package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bodgit/dump2png"
	"github.com/bodgit/dump2png/palette"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
	// Free up -h for the height flag.
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: "show help",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "dump2png"
	app.Usage = "visualize binary data as a PNG image"
	app.ArgsUsage = "FILE"
	app.Version = "1.0.0"
	app.Description = "Intended for exploring the layout of memory dumps and " +
		"other opaque binary files; each byte (or word) becomes one pixel.\n\n" +
		"Palette types: " + strings.Join(palette.Names(), ", ") + "."

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Value:   dump2png.DefaultWidth,
			Usage:   "width of the image in pixels",
		},
		&cli.IntFlag{
			Name:    "height",
			Aliases: []string{"h"},
			Value:   dump2png.DefaultHeight,
			Usage:   "maximum height of the image in rows",
		},
		&cli.BoolFlag{
			Name:    "no-autoscale",
			Aliases: []string{"H"},
			Usage:   "don't autoscale height to fit the input",
		},
		&cli.BoolFlag{
			Name:    "no-mask",
			Aliases: []string{"M"},
			Usage:   "don't mask the least significant bit of each channel",
		},
		&cli.StringFlag{
			Name:    "palette",
			Aliases: []string{"p"},
			Value:   dump2png.DefaultPalette,
			Usage:   "palette type for colorization",
		},
		&cli.IntFlag{
			Name:    "zoom",
			Aliases: []string{"z"},
			Value:   1,
			Usage:   "average multiple samples per pixel; eg, 16 averages 16 as 1",
		},
		&cli.IntFlag{
			Name:    "skip",
			Aliases: []string{"k"},
			Value:   1,
			Usage:   "skip samples between pixels; eg, 3 means show 1 out of 3",
		},
		&cli.Int64Flag{
			Name:    "seek",
			Aliases: []string{"s"},
			Usage:   "byte offset of the input at which to begin reading",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   "dump2png.png",
			Usage:   "output path",
		},
		&cli.IntFlag{
			Name:    "colors",
			Aliases: []string{"c"},
			Usage:   "quantize the output to this many colors",
		},
		&cli.StringFlag{
			Name:  "presets",
			Usage: "path to a YAML preset file",
		},
		&cli.StringFlag{
			Name:  "preset",
			Usage: "name of a preset to apply",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}
	infile := c.Args().First()

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	cfg := dump2png.Config{
		Width:   c.Int("width"),
		Height:  c.Int("height"),
		Zoom:    c.Int("zoom"),
		Skip:    c.Int("skip"),
		Seek:    c.Int64("seek"),
		Mask:    !c.Bool("no-mask"),
		Colors:  c.Int("colors"),
		Palette: c.String("palette"),
	}

	if name := c.String("preset"); name != "" {
		file := c.String("presets")
		if file == "" {
			return cli.NewExitError("--preset requires --presets FILE", 1)
		}
		presets, err := dump2png.LoadPresets(file)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		p, ok := presets[name]
		if !ok {
			return cli.NewExitError(fmt.Sprintf("unknown preset %q", name), 1)
		}
		applyPreset(c, &cfg, p)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Zoom < 1 || cfg.Skip < 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	pal, err := palette.New(cfg.Palette)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	// Fit the height to the input unless told not to. The decompressed
	// size of a compressed input is unknown up front, so the height flag
	// is used as-is.
	if dump2png.Compressed(infile) {
		logger.Printf("compressed input, not autoscaling height")
	} else {
		info, err := os.Stat(infile)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("can't access %s: %v", infile, err), 2)
		}

		full := dump2png.AutoHeight(info.Size(), cfg.Width, cfg.Zoom, cfg.Skip, pal.BytesPerPixel())
		if full > cfg.Height {
			shown := int64(cfg.Width) * int64(cfg.Height) * int64(cfg.Zoom) *
				int64(cfg.Skip) * int64(pal.BytesPerPixel())
			fmt.Printf("Truncating height: showing %d of %d bytes. Use -h to allow larger heights.\n",
				shown, info.Size())
		} else if !c.Bool("no-autoscale") {
			cfg.Height = full
		}
	}

	fmt.Printf("Output image: height:%d, width:%d\n", cfg.Height, cfg.Width)

	r, err := dump2png.New(cfg, logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	outfile := c.String("out")
	fmt.Printf("Writing %s...\n", outfile)

	if err := r.RenderFile(infile, outfile); err != nil {
		return cli.NewExitError(err, 2)
	}

	return nil
}

// applyPreset fills cfg from p for every setting not given explicitly on the
// command line.
func applyPreset(c *cli.Context, cfg *dump2png.Config, p dump2png.Preset) {
	if p.Width != 0 && !c.IsSet("width") {
		cfg.Width = p.Width
	}
	if p.Height != 0 && !c.IsSet("height") {
		cfg.Height = p.Height
	}
	if p.Zoom != 0 && !c.IsSet("zoom") {
		cfg.Zoom = p.Zoom
	}
	if p.Skip != 0 && !c.IsSet("skip") {
		cfg.Skip = p.Skip
	}
	if p.Palette != "" && !c.IsSet("palette") {
		cfg.Palette = p.Palette
	}
	if p.Colors != 0 && !c.IsSet("colors") {
		cfg.Colors = p.Colors
	}
	if p.Mask != nil && !c.IsSet("no-mask") {
		cfg.Mask = *p.Mask
	}
}
