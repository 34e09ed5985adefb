package plants

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/utils"
)

type PlantAddCmd struct {
	Name        string `arg:"" help:"Plant name."`
	Frequency   int    `short:"f" help:"Watering interval in days." default:"7"`
	Acquired    string `help:"Acquisition date (YYYY-MM-DD). Defaults to today."`
	LastWatered string `help:"Last watered date (YYYY-MM-DD), if known."`
}

func (c *PlantAddCmd) Validate() error {
	if c.Frequency < 1 {
		return fmt.Errorf("frequency must be at least 1 day")
	}
	if c.Acquired != "" && !utils.ValidDate(c.Acquired) {
		return fmt.Errorf("invalid acquisition date %q (expected YYYY-MM-DD)", c.Acquired)
	}
	if c.LastWatered != "" && !utils.ValidDate(c.LastWatered) {
		return fmt.Errorf("invalid last-watered date %q (expected YYYY-MM-DD)", c.LastWatered)
	}
	return nil
}

func (c *PlantAddCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}

	acquired := c.Acquired
	if acquired == "" {
		acquired = ctx.Today()
	}

	id := models.PlantID{Name: c.Name, AcquisitionDate: acquired}
	next, err := ctx.Actions.AddPlant(records, models.PlantRecord{
		Name:            c.Name,
		AcquisitionDate: acquired,
		LastWatered:     c.LastWatered,
		FrequencyDays:   c.Frequency,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added plant: %s (every %d days)\n", id, c.Frequency)
	ctx.SavePlants(next)
	return nil
}
