package server

import (
	"time"

	"homegame-service/internal/providers"
)

const (
	// Requests carry no body to speak of; reading headers is quick.
	readTimeout = 5 * time.Second
	// A handler that misses the window cache performs one upstream fetch,
	// so the write budget is the fetch budget plus encoding headroom.
	writeTimeout = providers.FetchTimeout + 5*time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout matches the upstream fetch budget so an in-flight fetch
// can drain before the listeners close. A var so tests can shorten it.
var shutdownTimeout = providers.FetchTimeout
