package armordetail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	armorDetailKeyPrefix = "armor_detail:"

	// DefaultTTL is used when the config leaves TTL unset
	DefaultTTL = 24 * time.Hour

	// Error messages
	errArmorIDEmpty = "armor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis armor detail repository.
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps cached entries (optional, defaults to the real clock)
	Clock clock.Clock
	// TTL of cached entries (optional, defaults to DefaultTTL)
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed armor detail repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// armorDetailData is the storage structure for an armor detail
// This is what gets serialized to Redis
type armorDetailData struct {
	ArmorID   string `json:"armor_id"`
	Name      string `json:"name"`
	BaseAC    int    `json:"base_ac"`
	Category  string `json:"category"`
	DexCap    *int   `json:"dex_cap,omitempty"`
	FetchedAt int64  `json:"fetched_at"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if dnd5e.NormalizeID(input.ArmorID) == "" {
		return nil, errors.InvalidArgument(errArmorIDEmpty)
	}

	key := GetKey(input.ArmorID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("armor detail %s not found", input.ArmorID)
		}
		return nil, errors.Wrapf(err, "failed to get armor detail %s", input.ArmorID)
	}

	var data armorDetailData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal armor detail data")
	}

	return &GetOutput{
		Detail: &dnd5e.ArmorDetail{
			ArmorID:  data.ArmorID,
			Name:     data.Name,
			BaseAC:   data.BaseAC,
			Category: dnd5e.ArmorCategory(data.Category),
			DexCap:   data.DexCap,
		},
		FetchedAt: time.Unix(data.FetchedAt, 0).UTC(),
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.Detail == nil {
		vb.RequiredField("detail")
	} else {
		errors.ValidateRequired("detail.armor_id", input.Detail.ArmorID, vb)
		if _, ok := dnd5e.ParseArmorCategory(string(input.Detail.Category)); !ok {
			vb.InvalidField("detail.category", fmt.Sprintf("unknown armor category %q", input.Detail.Category))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	data := armorDetailData{
		ArmorID:   input.Detail.ArmorID,
		Name:      input.Detail.Name,
		BaseAC:    input.Detail.BaseAC,
		Category:  string(input.Detail.Category),
		DexCap:    input.Detail.DexCap,
		FetchedAt: now.Unix(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal armor detail data")
	}

	key := GetKey(input.Detail.ArmorID)
	if err := r.client.Set(ctx, key, jsonData, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache armor detail %s", input.Detail.ArmorID)
	}

	return &PutOutput{FetchedAt: now}, nil
}

// GetKey returns the Redis key for an armor detail. Both "EQUIPMENT_CHAIN_MAIL"
// and "chain-mail" map to "armor_detail:chain-mail".
// Exposed for testing purposes
func GetKey(armorID string) string {
	return fmt.Sprintf("%s%s", armorDetailKeyPrefix, dnd5e.NormalizeID(armorID))
}
