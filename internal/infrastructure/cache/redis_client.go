package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis returns a redis client when REDIS_ADDR (or REDIS_URL) is
// configured, nil otherwise. The dashboard cache is optional: a missing
// or unreachable redis only disables caching, it never blocks startup.
func ConnectRedis(logger *logrus.Logger) *redis.Client {
	var opts *redis.Options

	if url := os.Getenv("REDIS_URL"); url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			logger.WithError(err).Warn("invalid REDIS_URL, caching disabled")
			return nil
		}
		opts = parsed
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		opts = &redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}
	} else {
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, caching disabled")
		return nil
	}

	return client
}
