package mlb

const (
	// ProviderName tags logs and metrics for this adapter.
	ProviderName = "mlb"

	defaultBaseURL = "https://statsapi.mlb.com/api/v1"
	sportID        = "1"

	// The MLB Stats API reports TBD games with a placeholder start of
	// 03:33 UTC.
	tbdSentinelHour   = 3
	tbdSentinelMinute = 33
)
