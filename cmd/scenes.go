package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()
	return nil
}
