package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/web/server"
)

var logger = log.New("web")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer-web"
	app.Usage = "serve the raytracer render API"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Debug)
		}

		port := ctx.Int("port")
		logger.Noticef("Whitted raytracer web server")
		logger.Noticef("scene list at http://localhost:%d/api/scenes", port)
		return server.NewServer(port).Start()
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("error starting server: %v", err)
		os.Exit(1)
	}
}
