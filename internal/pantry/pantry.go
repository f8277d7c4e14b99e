// Package pantry tracks ingredient availability. Items that are not out of
// stock feed their recipe tags into meal selection; low and out items make up
// the shopping list.
package pantry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/energycoach/internal/constants"
	"github.com/julianstephens/energycoach/internal/models"
)

var (
	ErrItemNotFound    = errors.New("pantry item not found")
	ErrInvalidStatus   = errors.New("invalid pantry status")
	ErrInvalidItem     = errors.New("invalid pantry item")
	ErrUnknownCategory = errors.New("unknown pantry category")
)

var Categories = []constants.PantryCategory{
	constants.CategoryProtein,
	constants.CategoryProduce,
	constants.CategoryPantry,
	constants.CategoryDairy,
	constants.CategoryFrozen,
	constants.CategoryDrinks,
}

// AvailableTags returns the recipe tags of every item that is not out.
func AvailableTags(items []models.PantryItem) []string {
	tags := []string{}
	for _, item := range items {
		if item.Status != constants.PantryOut && item.RecipeTag != "" {
			tags = append(tags, item.RecipeTag)
		}
	}
	return tags
}

// CycleStatus steps full -> low -> out -> full.
func CycleStatus(current constants.PantryStatus) constants.PantryStatus {
	switch current {
	case constants.PantryFull:
		return constants.PantryLow
	case constants.PantryLow:
		return constants.PantryOut
	default:
		return constants.PantryFull
	}
}

func ParseStatus(s string) (constants.PantryStatus, error) {
	switch st := constants.PantryStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case constants.PantryFull, constants.PantryLow, constants.PantryOut:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func ParseCategory(s string) (constants.PantryCategory, error) {
	c := constants.PantryCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// UpdateItem returns a copy of items with the matching item set to status.
func UpdateItem(items []models.PantryItem, id string, status constants.PantryStatus, now time.Time) ([]models.PantryItem, error) {
	out := make([]models.PantryItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			out[i].UpdatedAt = now
			return out, nil
		}
	}
	return out, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// Cycle advances the status of the matching item.
func Cycle(items []models.PantryItem, id string, now time.Time) ([]models.PantryItem, error) {
	for _, item := range items {
		if item.ID == id {
			return UpdateItem(items, id, CycleStatus(item.Status), now)
		}
	}
	return items, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// ClearBought marks every out item as full again.
func ClearBought(items []models.PantryItem, now time.Time) []models.PantryItem {
	out := make([]models.PantryItem, len(items))
	for i, item := range items {
		if item.Status == constants.PantryOut {
			item.Status = constants.PantryFull
			item.UpdatedAt = now
		}
		out[i] = item
	}
	return out
}

// AddItem appends a user item in full stock.
func AddItem(items []models.PantryItem, name string, category constants.PantryCategory, recipeTag string, now time.Time) ([]models.PantryItem, models.PantryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return items, models.PantryItem{}, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if recipeTag != "" && !strings.HasPrefix(recipeTag, constants.RequiresTagPrefix) {
		recipeTag = constants.RequiresTagPrefix + recipeTag
	}
	item := models.PantryItem{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Status:    constants.PantryFull,
		RecipeTag: recipeTag,
		UpdatedAt: now,
	}
	return append(items, item), item, nil
}

// ShoppingList returns the low and out items in pantry order.
func ShoppingList(items []models.PantryItem) []models.PantryItem {
	var list []models.PantryItem
	for _, item := range items {
		if item.Status == constants.PantryLow || item.Status == constants.PantryOut {
			list = append(list, item)
		}
	}
	return list
}

// FormatShoppingList renders a checklist: "[ ]" for out items, "[~]" for low ones.
func FormatShoppingList(items []models.PantryItem, now time.Time) string {
	list := ShoppingList(items)
	if len(list) == 0 {
		return "Nothing needed — pantry is stocked!"
	}
	lines := make([]string, len(list))
	for i, item := range list {
		box := "[~] "
		if item.Status == constants.PantryOut {
			box = "[ ] "
		}
		lines[i] = box + item.Name
	}
	return fmt.Sprintf("Shopping List — %s\n\n%s", now.Format("1/2/2006"), strings.Join(lines, "\n"))
}

// DefaultPantry returns the starter staples, all in full stock.
func DefaultPantry(now time.Time) []models.PantryItem {
	item := func(id, name string, category constants.PantryCategory, tag string) models.PantryItem {
		return models.PantryItem{ID: id, Name: name, Category: category, Status: constants.PantryFull, RecipeTag: tag, UpdatedAt: now}
	}
	return []models.PantryItem{
		item("salmon-frozen", "Salmon (frozen)", constants.CategoryProtein, "adds-salmon"),
		item("chicken", "Chicken", constants.CategoryProtein, "adds-chicken"),
		item("tuna-low-sodium", "Tuna (low-sodium)", constants.CategoryProtein, "adds-tuna"),
		item("turkey-cold-cuts", "Turkey cold cuts", constants.CategoryProtein, ""),
		item("eggs", "Eggs", constants.CategoryProtein, "adds-eggs"),

		item("blueberries", "Blueberries", constants.CategoryProduce, ""),
		item("rainbow-peppers", "Rainbow / Bell peppers", constants.CategoryProduce, ""),
		item("zucchini", "Zucchini", constants.CategoryProduce, ""),
		item("cauliflower", "Cauliflower", constants.CategoryProduce, ""),
		item("broccoli", "Broccoli", constants.CategoryProduce, ""),
		item("tomato", "Tomato", constants.CategoryProduce, ""),
		item("yellow-onion", "Yellow onion", constants.CategoryProduce, ""),
		item("fresh-garlic", "Fresh garlic", constants.CategoryProduce, ""),
		item("romaine-mix", "Romaine salad mix", constants.CategoryProduce, ""),
		item("guacamole", "Guacamole", constants.CategoryProduce, ""),
		item("fuji-apples", "Fuji apples", constants.CategoryProduce, ""),

		item("rolled-oats", "Rolled oats", constants.CategoryPantry, ""),
		item("walnuts", "Walnuts", constants.CategoryPantry, ""),
		item("manuka-honey", "Manuka honey", constants.CategoryPantry, ""),
		item("pasta-ww", "Pasta (whole wheat)", constants.CategoryPantry, ""),
		item("rice", "Rice", constants.CategoryPantry, ""),
		item("coconut-milk", "Coconut milk", constants.CategoryPantry, ""),
		item("bagels", "Bagels", constants.CategoryPantry, ""),
		item("ww-bread", "Whole wheat bread", constants.CategoryPantry, ""),
		item("buckwheat-waffle", "Buckwheat waffle mix", constants.CategoryPantry, ""),

		item("cream-cheese", "Cream cheese / Vegan mayo", constants.CategoryDairy, ""),
		item("marble-cheese", "Marble cheese / Mozzarella", constants.CategoryDairy, ""),

		item("hash-browns", "Hash browns (frozen)", constants.CategoryFrozen, ""),
		item("frozen-pizza", "Frozen pizza", constants.CategoryFrozen, ""),

		item("coffee", "Coffee", constants.CategoryDrinks, ""),
		item("green-tea", "Green tea", constants.CategoryDrinks, ""),
		item("nettle-tea", "Nettle leaf tea", constants.CategoryDrinks, ""),
		item("sparkling-water", "Sparkling mineral water", constants.CategoryDrinks, ""),
	}
}
