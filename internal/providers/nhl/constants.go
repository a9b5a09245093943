package nhl

const (
	// ProviderName tags logs and metrics for this adapter.
	ProviderName = "nhl"

	defaultBaseURL = "https://api-web.nhle.com/v1"
)
