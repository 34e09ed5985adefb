package cli

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/constants"
)

type SnoozeCmd struct {
	Name     string `arg:"" help:"Plant name."`
	Acquired string `help:"Acquisition date (YYYY-MM-DD), required when two plants share a name."`
	Days     int    `short:"d" help:"How many days to snooze for." default:"${snooze_days}"`
}

func (c *SnoozeCmd) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("snooze days must not be negative")
	}
	return nil
}

func (c *SnoozeCmd) Run(ctx *Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}

	id, err := ResolvePlant(records, c.Name, c.Acquired)
	if err != nil {
		return err
	}

	next, err := ctx.Actions.SnoozeFor(records, id, ctx.Today(), c.Days)
	if err != nil {
		return err
	}

	fmt.Printf("Snoozed %s for %d day(s)\n", id, c.Days)
	ctx.SavePlants(next)
	return nil
}

// SnoozeDaysVar is the kong interpolation variable backing the --days
// default.
var SnoozeDaysVar = fmt.Sprintf("%d", constants.DefaultSnoozeDays)
