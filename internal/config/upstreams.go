package config

const (
	envMLBBaseURL  = "MLB_BASE_URL"
	envNHLBaseURL  = "NHL_BASE_URL"
	envESPNBaseURL = "ESPN_BASE_URL"
)

// UpstreamsConfig carries base-URL overrides for the schedule APIs. Empty
// values fall through to each adapter's default.
type UpstreamsConfig struct {
	MLBBaseURL  string
	NHLBaseURL  string
	ESPNBaseURL string
}

func loadUpstreams() UpstreamsConfig {
	return UpstreamsConfig{
		MLBBaseURL:  envOrDefault(envMLBBaseURL, ""),
		NHLBaseURL:  envOrDefault(envNHLBaseURL, ""),
		ESPNBaseURL: envOrDefault(envESPNBaseURL, ""),
	}
}
