package cache

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	TTLShort  = 5 * time.Minute
	TTLMedium = 30 * time.Minute
	TTLLong   = 2 * time.Hour
)

// Query key groups. Mutations invalidate whole groups so list screens refetch
// fresh data after a write, including cross-entity side effects on the
// denormalized employee fields.
const (
	KeyAccounts            = "accounts"
	KeyStaffs              = "staffs"
	KeyGroups              = "employee-groups"
	KeyGroupDetail         = "employee-group"
	KeyUnassignedEmployees = "unassigned-employees"
	KeyAvailableAccounts   = "available-accounts"
	KeyReports             = "reports"
	KeyReportDetails       = "report-details"
)

// Cache is a keyed read-through cache over redis. A cache miss or redis
// failure always degrades to a direct backend fetch; callers never see cache
// errors.
type Cache struct {
	rdb    *redis.Client
	prefix string
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, prefix: "console:query:"}
}

// Key joins the parts of a query key tuple. Each distinct tuple is an
// independent cache entry.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

func (c *Cache) GetJSON(ctx context.Context, key string, out interface{}) bool {
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
}

// Invalidate removes every entry under the given key groups.
func (c *Cache) Invalidate(ctx context.Context, groups ...string) {
	for _, group := range groups {
		pattern := c.prefix + group + "*"
		iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			log.Printf("cache scan failed for %s: %v", group, err)
			continue
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				log.Printf("cache invalidate failed for %s: %v", group, err)
			}
		}
	}
}
