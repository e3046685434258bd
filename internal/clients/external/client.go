// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-sheet/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Client defines the interface for external API interactions
type Client interface {
	// GetArmorDetail fetches the base AC, category and dex cap of a piece of armor
	GetArmorDetail(ctx context.Context, armorID string) (*internalDnd5e.ArmorDetail, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	// Set defaults if not provided
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Create the base D&D 5e API client
	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// Wrap with caching for better performance
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) GetArmorDetail(ctx context.Context, armorID string) (*internalDnd5e.ArmorDetail, error) {
	// Convert our internal ID format to API format
	apiID := internalDnd5e.NormalizeID(armorID)
	if apiID == "" || apiID == internalDnd5e.ArmorNone {
		return nil, errors.InvalidArgument("armor id is required")
	}
	// GetEquipment takes no context, so an expired one is only honored up front
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "armor lookup for %s canceled", armorID)
	}

	slog.InfoContext(ctx, "Calling D&D 5e API to get armor", "armor", armorID, "api", apiID)
	item, err := c.dnd5eClient.GetEquipment(apiID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to get armor %s (api: %s)", armorID, apiID)).
			WithMeta("armor_id", armorID)
	}

	detail, err := convertEquipmentToArmorDetail(item)
	if err != nil {
		return nil, err
	}

	// Ensure the ID matches our internal format
	detail.ArmorID = armorID
	return detail, nil
}

// convertEquipmentToArmorDetail converts dnd5e-api equipment into an armor detail.
// Anything other than armor with an armor class is rejected.
func convertEquipmentToArmorDetail(equipment dnd5e.EquipmentInterface) (*internalDnd5e.ArmorDetail, error) {
	if equipment == nil {
		return nil, errors.NotFound("equipment not found")
	}

	armor, ok := equipment.(*entities.Armor)
	if !ok {
		return nil, errors.InvalidArgumentf("equipment is not armor (type %s)", equipment.GetType())
	}

	if armor.ArmorClass == nil {
		return nil, errors.InvalidArgumentf("armor %s has no armor class", armor.Key)
	}

	category, ok := internalDnd5e.ParseArmorCategory(armor.ArmorCategory)
	if !ok {
		return nil, errors.InvalidArgumentf("armor %s has unknown category %q", armor.Key, armor.ArmorCategory)
	}

	detail := &internalDnd5e.ArmorDetail{
		ArmorID:  armor.Key,
		Name:     armor.Name,
		BaseAC:   armor.ArmorClass.Base,
		Category: category,
	}

	switch {
	case category == internalDnd5e.ArmorCategoryHeavy || !armor.ArmorClass.DexBonus:
		detail.DexCap = intPtr(0)
	case category == internalDnd5e.ArmorCategoryMedium:
		detail.DexCap = intPtr(internalDnd5e.MediumArmorDexCap)
	}

	return detail, nil
}

func intPtr(v int) *int {
	return &v
}
