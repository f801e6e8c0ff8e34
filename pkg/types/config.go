package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// APIBaseURL is the REST base path of the platform, e.g.
	// https://tangtang.example.vn/api
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:5000/api"`

	// Token is the bearer token issued by the platform's auth service. Empty
	// means anonymous browsing; mutating calls will be rejected server-side.
	Token string `envconfig:"TOKEN"`

	RequestTimeoutSec uint `envconfig:"REQUEST_TIMEOUT_SEC" default:"15"`

	// ChatPollIntervalSec drives the case-page chat poller.
	ChatPollIntervalSec uint `envconfig:"CHAT_POLL_INTERVAL_SEC" default:"5"`

	// RateLimitRPS caps outgoing request throughput client-side.
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}
