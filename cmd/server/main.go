package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/notify"
	"github.com/iceghosttth/bkalendar/internal/redis"
)

func main() {
	// .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore(db.DB)

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	if env.MQTTBrokerURL != "" {
		if err := notify.Init(env.MQTTBrokerURL, "bkalendar-server"); err != nil {
			// Display pushes are an optional extra; the service runs without them.
			log.Error().Err(err).Msg("mqtt init failed, display notifications disabled")
		}
		defer notify.Close()
	}

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	RegisterRoutes(r, env, store, LoadTemplates())

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
