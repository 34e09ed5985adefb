// Package suggest exposes the watering-interval suggestion workflow:
// listing computed suggestions and accepting or dismissing one.
package suggest

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/frequency"
	"github.com/jesswhitlock/verdant/internal/models"
)

type SuggestListCmd struct{}

func (c *SuggestListCmd) Run(ctx *cli.Context) error {
	suggestions, _, err := computeSuggestions(ctx)
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("No suggestions right now. Keep logging waterings!")
		return nil
	}

	fmt.Println("Watering interval suggestions:")
	for _, s := range suggestions {
		fmt.Printf("  %s: every %d days (currently %d)\n", s.PlantID(), s.AverageGapDays, s.CurrentFrequencyDays)
	}
	fmt.Println("\nUse 'verdant suggest accept <name>' or 'verdant suggest dismiss <name>'.")
	return nil
}

type SuggestAcceptCmd struct {
	Name     string `arg:"" help:"Plant name."`
	Acquired string `help:"Acquisition date (YYYY-MM-DD), required when two plants share a name."`
}

func (c *SuggestAcceptCmd) Run(ctx *cli.Context) error {
	s, records, err := findSuggestion(ctx, c.Name, c.Acquired)
	if err != nil {
		return err
	}

	next, err := ctx.Actions.AcceptSuggestion(records, s.PlantID(), s.AverageGapDays)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s to every %d days\n", s.PlantID(), s.AverageGapDays)
	ctx.SavePlants(next)
	return nil
}

type SuggestDismissCmd struct {
	Name     string `arg:"" help:"Plant name."`
	Acquired string `help:"Acquisition date (YYYY-MM-DD), required when two plants share a name."`
}

func (c *SuggestDismissCmd) Run(ctx *cli.Context) error {
	s, records, err := findSuggestion(ctx, c.Name, c.Acquired)
	if err != nil {
		return err
	}

	next, err := ctx.Actions.DismissSuggestion(records, s.PlantID(), s.AverageGapDays)
	if err != nil {
		return err
	}

	fmt.Printf("Dismissed the %d-day suggestion for %s\n", s.AverageGapDays, s.PlantID())
	ctx.SavePlants(next)
	return nil
}

func computeSuggestions(ctx *cli.Context) ([]models.Suggestion, []models.PlantRecord, error) {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return nil, nil, err
	}
	history, err := ctx.Store.ReadHistory()
	if err != nil {
		return nil, nil, err
	}
	return frequency.SuggestFrequencies(history, records), records, nil
}

// findSuggestion resolves the named plant and returns its pending
// suggestion, failing when none is currently computed for it.
func findSuggestion(ctx *cli.Context, name, acquired string) (models.Suggestion, []models.PlantRecord, error) {
	suggestions, records, err := computeSuggestions(ctx)
	if err != nil {
		return models.Suggestion{}, nil, err
	}

	id, err := cli.ResolvePlant(records, name, acquired)
	if err != nil {
		return models.Suggestion{}, nil, err
	}

	for _, s := range suggestions {
		if s.PlantID() == id {
			return s, records, nil
		}
	}
	return models.Suggestion{}, nil, fmt.Errorf("no pending suggestion for %s", id)
}
