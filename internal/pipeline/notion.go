package pipeline

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
)

// NotionClipper mirrors the final dataset into a Notion database for manual
// review. Optional sink, enabled with NOTION_CLIP=true.
type NotionClipper struct {
	client *notionapi.Client
	dbID   notionapi.DatabaseID
}

// NewNotionClipper creates a clipper for an existing database.
func NewNotionClipper(token, databaseID string) (*NotionClipper, error) {
	if token == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is required")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	return &NotionClipper{
		client: notionapi.NewClient(notionapi.Token(token)),
		dbID:   notionapi.DatabaseID(databaseID),
	}, nil
}

// ClipItem creates one database page for an item.
func (nc *NotionClipper) ClipItem(ctx context.Context, it Item) error {
	properties := notionapi.Properties{
		"Title": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: it.Title,
					},
				},
			},
		},
		"URL": notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  it.URL,
		},
		"Source": notionapi.SelectProperty{
			Type: notionapi.PropertyTypeSelect,
			Select: notionapi.Option{
				Name: it.SourceName,
			},
		},
		"Category": notionapi.SelectProperty{
			Type: notionapi.PropertyTypeSelect,
			Select: notionapi.Option{
				Name: it.Category,
			},
		},
	}

	if it.Summary != "" {
		properties["Summary"] = notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: truncateString(it.Summary, 2000), // Notion limit
					},
				},
			},
		}
	}

	pageRequest := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: nc.dbID,
		},
		Properties: properties,
	}

	_, err := nc.client.Page.Create(ctx, pageRequest)
	if err != nil {
		return fmt.Errorf("failed to clip item: %w", err)
	}
	return nil
}

// ClipItems clips every item, continuing past per-item failures, and
// returns the number clipped.
func (nc *NotionClipper) ClipItems(ctx context.Context, items []Item) int {
	clipped := 0
	for _, it := range items {
		if err := nc.ClipItem(ctx, it); err != nil {
			warnf("failed to clip '%s': %v", it.Title, err)
			continue
		}
		clipped++
	}
	return clipped
}
