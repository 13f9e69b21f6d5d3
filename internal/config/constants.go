// internal/config/constants.go
package config

import "time"

const (
	AppName    = "learnroute"
	AppVersion = "0.3.0"
)

const (
	DefaultServerPort          = ":8080"
	DefaultReadTimeout         = 5 * time.Second
	DefaultWriteTimeout        = 10 * time.Second
	DefaultIdleTimeout         = 120 * time.Second
	DefaultRequestTimeout      = 60 * time.Second
	DefaultShutdownTimeout     = 5 * time.Second
	DefaultLogLevel            = "info"
	DefaultAccessTokenTTL      = 7 * 24 * time.Hour
	DefaultLeaderboardTTL      = 30 * time.Second
	DefaultLeaderboardLimit    = 10
	DefaultLeaderboardMaxLimit = 100
	DefaultJWTSecretKey        = "learnroute-dev-secret"
)
