package pantry

import (
	"fmt"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
	"github.com/julianstephens/energycoach/internal/pantry"
)

type PantryCmd struct {
	List     PantryListCmd     `cmd:"" help:"List pantry items by category." default:"1"`
	Cycle    PantryCycleCmd    `cmd:"" help:"Step an item full -> low -> out -> full."`
	Set      PantrySetCmd      `cmd:"" help:"Set an item's stock level."`
	Add      PantryAddCmd      `cmd:"" help:"Add a pantry item."`
	Clear    PantryClearCmd    `cmd:"" help:"Mark every out item as restocked."`
	Shopping PantryShoppingCmd `cmd:"" help:"Print the shopping list."`
}

type PantryListCmd struct {
	Category string `help:"Only list this category."`
}

func (c *PantryListCmd) Run(ctx *cli.Context) error {
	var only constants.PantryCategory
	if c.Category != "" {
		cat, err := pantry.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		only = cat
	}

	items := ctx.App().Pantry()
	for _, cat := range pantry.Categories {
		if only != "" && cat != only {
			continue
		}
		printed := false
		for _, item := range items {
			if item.Category != cat {
				continue
			}
			if !printed {
				ctx.Printf("%s\n", cat)
				printed = true
			}
			ctx.Printf("  %-4s %-28s %s\n", statusMark(item.Status), item.Name, item.ID)
		}
	}
	return nil
}

func statusMark(s constants.PantryStatus) string {
	switch s {
	case constants.PantryLow:
		return "low"
	case constants.PantryOut:
		return "out"
	default:
		return "ok"
	}
}

type PantryCycleCmd struct {
	ID string `arg:"" help:"Pantry item ID."`
}

func (c *PantryCycleCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	items, err := pantry.Cycle(a.Pantry(), c.ID, a.Clock.Now())
	if err != nil {
		return err
	}
	return save(ctx, items, c.ID)
}

type PantrySetCmd struct {
	ID     string `arg:"" help:"Pantry item ID."`
	Status string `arg:"" help:"Stock level: full, low or out."`
}

func (c *PantrySetCmd) Run(ctx *cli.Context) error {
	status, err := pantry.ParseStatus(c.Status)
	if err != nil {
		return err
	}
	a := ctx.App()
	items, err := pantry.UpdateItem(a.Pantry(), c.ID, status, a.Clock.Now())
	if err != nil {
		return err
	}
	return save(ctx, items, c.ID)
}

type PantryAddCmd struct {
	Name     string `arg:"" help:"Item name."`
	Category string `help:"Category (protein, produce, pantry, dairy, frozen, drinks)." default:"pantry"`
	Tag      string `help:"Recipe tag this item enables, e.g. salmon."`
}

func (c *PantryAddCmd) Run(ctx *cli.Context) error {
	cat, err := pantry.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	a := ctx.App()
	items, item, err := pantry.AddItem(a.Pantry(), c.Name, cat, c.Tag, a.Clock.Now())
	if err != nil {
		return err
	}
	if err := a.SavePantry(items); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	ctx.Printf("Added %s (ID: %s)\n", item.Name, item.ID)
	return nil
}

type PantryClearCmd struct{}

func (c *PantryClearCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	if err := a.SavePantry(pantry.ClearBought(a.Pantry(), a.Clock.Now())); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	ctx.Println("Restocked all out items.")
	return nil
}

type PantryShoppingCmd struct{}

func (c *PantryShoppingCmd) Run(ctx *cli.Context) error {
	a := ctx.App()
	ctx.Println(pantry.FormatShoppingList(a.Pantry(), a.Now()))
	return nil
}

func save(ctx *cli.Context, items []models.PantryItem, id string) error {
	if err := ctx.App().SavePantry(items); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	for _, item := range items {
		if item.ID == id {
			ctx.Printf("%s is now %s\n", item.Name, item.Status)
		}
	}
	return nil
}
