package containers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisImage = "redis:7.2-alpine"

type RedisContainer struct {
	container *tcredis.RedisContainer
}

func NewRedisContainer() *RedisContainer {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, redisImage,
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(10*time.Second)),
	)
	if err != nil {
		log.Fatalf("error starting container: %v", err)
	}

	return &RedisContainer{
		container: container,
	}
}

func (c *RedisContainer) Shutdown() {
	err := c.container.Terminate(context.Background())
	if err != nil {
		log.Fatalf("error terminating container: %v", err)
	}
}

// URL returns a redis://host:port url for the running container.
func (c *RedisContainer) URL() string {
	url, err := c.container.ConnectionString(context.Background())
	if err != nil {
		log.Fatalf("error getting connection string: %v", err)
	}
	return url
}
