package config

import "time"

const (
	envProvider        = "PROVIDER"
	envRefreshInterval = "REFRESH_INTERVAL"
	envScheduleTTL     = "SCHEDULE_TTL"
	envTimezone        = "DISPLAY_TZ"

	envNHLBaseURL     = "NHL_BASE_URL"
	envNHLHTTPTimeout = "NHL_HTTP_TIMEOUT"

	envDisplayMode     = "DISPLAY_MODE"
	envSecondsPerGame  = "GAME_SECONDS"
	envLogoDir         = "LOGO_DIR"
	envFallbackLogo    = "FALLBACK_LOGO_PATH"
	envPlaceholderHold = "PLACEHOLDER_SECONDS"
	envFontPath        = "FONT_PATH"
	envFrameScale      = "FRAME_SCALE"
	envConsoleColors   = "CONSOLE_COLORS"

	envFavoriteFile     = "FAVORITE_TEAM_FILE"
	envFavoriteDefault  = "FAVORITE_TEAM_DEFAULT"
	envFavoriteRedisURL = "REDIS_URL"
	envFavoriteRedisKey = "FAVORITE_TEAM_KEY"

	envStatusPort    = "STATUS_PORT"
	envStatusEnabled = "STATUS_ENABLED"
	envAdminToken    = "ADMIN_TOKEN"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envOtelInterval = "OTEL_METRIC_EXPORT_INTERVAL"

	envMQTTBroker   = "MQTT_BROKER"
	envMQTTTopic    = "MQTT_TOPIC"
	envMQTTClientID = "MQTT_CLIENT_ID"

	defaultProvider        = "nhlweb"
	defaultRefreshInterval = 30 * time.Second
	defaultScheduleTTL     = 900 * time.Second

	defaultNHLBaseURL     = "https://api-web.nhle.com/v1"
	defaultNHLHTTPTimeout = 10 * time.Second

	defaultDisplayMode     = "framebuffer"
	defaultSecondsPerGame  = 4 * time.Second
	defaultPlaceholderHold = 2 * time.Second
	defaultLogoDir         = "/home/pi/scoreboard/assets/logos"
	defaultFallbackLogo    = "/home/pi/scoreboard/assets/blues_logo.png"
	defaultFrameScale      = 8

	defaultFavoriteFile = "/home/pi/scoreboard/favorite_team.txt"
	defaultFavoriteTeam = "STL"
	defaultFavoriteKey  = "scoreboard:favorite_team"

	defaultStatusPort  = "8080"
	defaultMetricsPort = "9090"

	defaultServiceName    = "nhl-scoreboard"
	defaultExportInterval = 15 * time.Second

	defaultMQTTTopic    = "scoreboard/nhl/events"
	defaultMQTTClientID = "nhl-scoreboard"
)
