package cmd

import (
	"github.com/urfave/cli"
)

// NewApp builds the command line interface.
func NewApp() *cli.App {
	// -v is taken by the verbosity flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes using recursive Whitted ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Render a single frame of a built-in scene. The output format is chosen by the
file extension (png, jpg, bmp, tif). Without --out the frame is written to
output/<scene>/render_<timestamp>.png.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene id (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 keeps the scene default)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (0 keeps the scene default)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of parallel workers (0 uses the CPU count)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "reflection/refraction bounce limit (0 keeps the default)",
				},
				cli.StringFlag{
					Name:  "texture, t",
					Usage: "image file to use as the texture of the textured scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the render API over http",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: Serve,
		},
	}

	return app
}
