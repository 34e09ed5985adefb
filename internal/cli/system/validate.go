package system

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return err
	}
	history, err := ctx.Store.ReadHistory()
	if err != nil {
		return err
	}

	v := validation.New()
	result := v.ValidatePlants(records)
	result.Conflicts = append(result.Conflicts, v.ValidateHistory(history, records).Conflicts...)

	fmt.Print(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) detected", len(result.Conflicts))
	}
	return nil
}
