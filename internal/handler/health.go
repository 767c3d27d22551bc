package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthPingTimeout = 3 * time.Second

// Health reports liveness of the process and its backing stores. The venue's
// reverse proxy polls it; a 503 makes the POS frontend show its offline
// banner, so both stores are pinged on every call.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		postgres := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "down"
		}

		cache := "up"
		if rdb.Ping(ctx).Err() != nil {
			cache = "down"
		}

		status := http.StatusOK
		if postgres == "down" || cache == "down" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    postgres,
			"redis": cache,
		})
	}
}
