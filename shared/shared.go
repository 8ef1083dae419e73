package shared

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"pousada/shared/cache"
	"pousada/shared/constant"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	return strconv.Atoi(value) //nolint:wrapcheck
}

func ConvertStringToInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64) //nolint:wrapcheck
}

// BuildCacheKey joins key parts with ":" into a single redis key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefixes.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
		}
	}
}
