package service

import (
	"Ecotrace/internal/api/config"
	"Ecotrace/internal/pkg/redis"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
)

func TestMain(m *testing.M) {
	// 单测不依赖外部组件：Redis 指向不可达地址让缓存调用直接失败降级，
	// MinIO 只用到拼接公共 URL 的配置
	config.Cfg = &config.Config{
		MinIO: config.MinIOConfig{
			ExternalEndpoint: "minio.test",
			MainBucket:       "ecotrace",
		},
	}
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})

	os.Exit(m.Run())
}
