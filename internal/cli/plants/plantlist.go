package plants

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/schedule"
)

type PlantListCmd struct {
	Due bool `help:"Only list plants that are due today."`
}

func (c *PlantListCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}

	today := ctx.Today()
	if c.Due {
		records = schedule.DueList(records, today)
	}

	if len(records) == 0 {
		if c.Due {
			fmt.Printf("Nothing to water on %s 🌿\n", today)
		} else {
			fmt.Println("No plants yet. Add one with 'verdant plant add'.")
		}
		return nil
	}

	for _, rec := range records {
		marker := " "
		if schedule.IsDue(rec, today) {
			marker = "!"
		}
		fmt.Printf("%s %s\n", marker, cli.FormatPlant(rec))
	}
	return nil
}
