package facilities

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// PantryItem is a food & beverage pantry entry.
type PantryItem struct {
	ID          string   `json:"id" yaml:"id"`
	ItemName    string   `json:"item_name" yaml:"item_name"`
	Stock       string   `json:"stock" yaml:"stock"`
	Description string   `json:"description" yaml:"description"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	OrderedBy   string   `json:"ordered_by" yaml:"ordered_by"`
	Documents   []string `json:"documents,omitempty" yaml:"documents,omitempty"`
}

// PantryItemFromRecord projects a pantry record.
func PantryItemFromRecord(rec Record) PantryItem {
	item := PantryItem{
		ID:          rec.ID(),
		ItemName:    rec.String("item_name"),
		Stock:       rec.String("stock"),
		Description: rec.String("description"),
		CreatedAt:   rec.String("created_at"),
		OrderedBy: strings.TrimSpace(rec.String("ordered_by_name", "firstname") + " " +
			rec.String("ordered_by_name", "lastname")),
	}
	for _, doc := range rec.Records("attachfiles") {
		if url := doc.String("document_url"); url != "" {
			item.Documents = append(item.Documents, url)
		}
	}
	return item
}

// PantryItem fetches one pantry entry.
func (c *Client) PantryItem(ctx context.Context, id string) (PantryItem, error) {
	var rec Record
	if err := c.Get(ctx, pantryPath(id), nil, &rec); err != nil {
		return PantryItem{}, err
	}
	return PantryItemFromRecord(rec), nil
}

// SavePantryItem creates (empty id) or updates a pantry entry from a multipart form.
func (c *Client) SavePantryItem(ctx context.Context, id string, form *Form) error {
	if id == "" {
		return c.SubmitForm(ctx, http.MethodPost, ResourcePantry.Path, form, nil)
	}
	return c.SubmitForm(ctx, http.MethodPut, pantryPath(id), form, nil)
}

func pantryPath(id string) string {
	return fmt.Sprintf("/pantries/%s.json", id)
}
