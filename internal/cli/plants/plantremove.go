package plants

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/models"
)

type PlantRemoveCmd struct {
	Name     string `arg:"" help:"Plant name."`
	Acquired string `help:"Acquisition date (YYYY-MM-DD), required when two plants share a name."`
	Reason   string `help:"Optional note recorded alongside the removal (e.g. 'gifted away')."`
	Yes      bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PlantRemoveCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}

	id, err := cli.ResolvePlant(records, c.Name, c.Acquired)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Remove %s? Its watering history will be kept. [y/N]: ", id)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Removal cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	next, removed, err := ctx.Actions.RemovePlant(records, id)
	if err != nil {
		return err
	}

	entry := models.GraveyardEntry{
		PlantName:       removed.Name,
		AcquisitionDate: removed.AcquisitionDate,
		RIPDate:         ctx.Today(),
		Reason:          c.Reason,
	}
	if err := ctx.Store.AppendGraveyard(entry); err != nil {
		fmt.Printf("Warning: graveyard entry could not be recorded (%v)\n", err)
	}

	fmt.Printf("Removed %s 🪦\n", id)
	ctx.SavePlants(next)
	return nil
}
