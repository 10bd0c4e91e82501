package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/web/server"
)

// Serve the render API.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	port := ctx.Int("port")
	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", port)
	return server.NewServer(port).Start()
}
