// Package redis connects to Redis and provides the shared QR code cache.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	qr := redis.NewCache(client, cfg.KeyPrefix, time.Hour)
//
// Cache stores byte values under prefix+key with a fixed TTL, so several
// showroom instances reuse each other's rendered PNGs. Healthcheck returns a
// readiness probe for httpserver.HealthCheckHandler.
package redis
