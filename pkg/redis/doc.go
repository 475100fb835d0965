// Package redis opens go-redis clients for the wizard's shared page store.
//
// Open validates the URL (redis:// or rediss://), applies pool settings and
// pings the server, retrying with a linear backoff until the context ends or
// the attempts run out:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//	    redis.WithPoolSize(20),
//	    redis.WithRetry(5, time.Second),
//	)
//
// Healthcheck and Shutdown plug the client into the app's readiness probe and
// shutdown hooks:
//
//	app := orgwizard.New(
//	    orgwizard.WithHealthChecks(
//	        orgwizard.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	    ),
//	)
//	app.Run(addr, orgwizard.ShutdownHook(redis.Shutdown(client)))
package redis
