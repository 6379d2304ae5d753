package config

import "time"

// Config holds runtime configuration for the scoreboard.
type Config struct {
	Provider        string
	RefreshInterval Duration
	ScheduleTTL     Duration
	Timezone        string
	NHL             NHLConfig
	Display         DisplayConfig
	Favorite        FavoriteConfig
	Status          StatusConfig
	Metrics         MetricsConfig
	MQTT            MQTTConfig
	Log             LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:        envOrDefault(envProvider, defaultProvider),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		ScheduleTTL:     durationEnvOrDefault(envScheduleTTL, defaultScheduleTTL),
		Timezone:        envOrDefault(envTimezone, ""),
		NHL:             loadNHL(),
		Display:         loadDisplay(),
		Favorite:        loadFavorite(),
		Status:          loadStatus(),
		Metrics:         loadMetrics(),
		MQTT:            loadMQTT(),
		Log:             loadLog(),
	}
}

// NHLConfig controls how we talk to the NHL api-web feed.
type NHLConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL:     envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		HTTPTimeout: durationEnvOrDefault(envNHLHTTPTimeout, defaultNHLHTTPTimeout),
	}
}

// DisplayConfig selects the display surface and screen pacing.
type DisplayConfig struct {
	Mode            string // framebuffer | console
	SecondsPerGame  time.Duration
	PlaceholderHold time.Duration
	LogoDir         string
	FallbackLogo    string
	FontPath        string
	FrameScale      int
	Colors          bool
}

func loadDisplay() DisplayConfig {
	return DisplayConfig{
		Mode:            envOrDefault(envDisplayMode, defaultDisplayMode),
		SecondsPerGame:  durationEnvOrDefault(envSecondsPerGame, defaultSecondsPerGame),
		PlaceholderHold: durationEnvOrDefault(envPlaceholderHold, defaultPlaceholderHold),
		LogoDir:         envOrDefault(envLogoDir, defaultLogoDir),
		FallbackLogo:    envOrDefault(envFallbackLogo, defaultFallbackLogo),
		FontPath:        envOrDefault(envFontPath, ""),
		FrameScale:      intEnvOrDefault(envFrameScale, defaultFrameScale),
		Colors:          boolEnvOrDefault(envConsoleColors, true),
	}
}

// FavoriteConfig locates the favorite-team value. A Redis URL takes precedence over the file.
type FavoriteConfig struct {
	File     string
	Default  string
	RedisURL string
	RedisKey string
}

func loadFavorite() FavoriteConfig {
	return FavoriteConfig{
		File:     envOrDefault(envFavoriteFile, defaultFavoriteFile),
		Default:  envOrDefault(envFavoriteDefault, defaultFavoriteTeam),
		RedisURL: envOrDefault(envFavoriteRedisURL, ""),
		RedisKey: envOrDefault(envFavoriteRedisKey, defaultFavoriteKey),
	}
}

// StatusConfig controls the read-only status API.
// AdminToken guards PUT /favorite; when empty the route is not mounted.
type StatusConfig struct {
	Enabled    bool
	Port       string
	AdminToken string
}

func loadStatus() StatusConfig {
	return StatusConfig{
		Enabled:    boolEnvOrDefault(envStatusEnabled, true),
		Port:       envOrDefault(envStatusPort, defaultStatusPort),
		AdminToken: envOrDefault(envAdminToken, ""),
	}
}

// MQTTConfig controls score-change event publishing. An empty broker disables it.
type MQTTConfig struct {
	Broker   string
	Topic    string
	ClientID string
}

func loadMQTT() MQTTConfig {
	return MQTTConfig{
		Broker:   envOrDefault(envMQTTBroker, ""),
		Topic:    envOrDefault(envMQTTTopic, defaultMQTTTopic),
		ClientID: envOrDefault(envMQTTClientID, defaultMQTTClientID),
	}
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, "info"),
		Format: envOrDefault(envLogFormat, "text"),
	}
}
