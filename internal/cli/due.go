package cli

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/schedule"
	"github.com/jesswhitlock/verdant/internal/utils"
)

type DueCmd struct {
	On string `help:"Evaluate the due list for a specific date (YYYY-MM-DD) instead of today."`
}

func (c *DueCmd) Validate() error {
	if c.On != "" && !utils.ValidDate(c.On) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.On)
	}
	return nil
}

func (c *DueCmd) Run(ctx *Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}

	today := c.On
	if today == "" {
		today = ctx.Today()
	}

	due := schedule.DueList(records, today)
	if len(due) == 0 {
		fmt.Printf("Nothing to water on %s 🌿\n", today)
		return nil
	}

	fmt.Printf("Due on %s:\n", today)
	for _, rec := range due {
		fmt.Printf("  %s\n", FormatPlant(rec))
	}
	return nil
}
