package cli

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/utils"
)

type WaterCmd struct {
	Name     string `arg:"" help:"Plant name."`
	Acquired string `help:"Acquisition date (YYYY-MM-DD), required when two plants share a name."`
	On       string `help:"Record the watering for a specific date instead of today."`
}

func (c *WaterCmd) Validate() error {
	if c.On != "" && !utils.ValidDate(c.On) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.On)
	}
	return nil
}

func (c *WaterCmd) Run(ctx *Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}

	id, err := ResolvePlant(records, c.Name, c.Acquired)
	if err != nil {
		return err
	}

	today := c.On
	if today == "" {
		today = ctx.Today()
	}

	next, entry, err := ctx.Actions.MarkWatered(records, id, today)
	if err != nil {
		return err
	}

	fmt.Printf("Watered %s on %s 💧\n", id, today)
	ctx.SavePlants(next)
	ctx.AppendHistory(entry)
	return nil
}
