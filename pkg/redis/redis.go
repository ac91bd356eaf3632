package redis

import (
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pixfil/onm-formation/config"
)

var (
	client *goredis.Client
	once   sync.Once
)

func GetClient() *goredis.Client {
	once.Do(func() {
		c := config.Get()

		client = goredis.NewClient(&goredis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	})

	return client
}
