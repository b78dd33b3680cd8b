// Package mongo connects to MongoDB using settings from Config.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "arshowroom")
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
// New pings the server before returning and retries per RetryAttempts and
// RetryInterval, which covers the database container starting after the
// service. Healthcheck returns a readiness probe.
package mongo
