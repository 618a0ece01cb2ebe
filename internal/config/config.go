package config

const (
	// DefaultOutput is the destination written when no site file or flag overrides it.
	DefaultOutput = "index.html"

	// DefaultPort is the default preview server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; the emission ledger is disabled unless a URL is provided.
	DefaultDatabaseURL = ""

	// DefaultHistoryLimit is the number of emissions listed by default.
	DefaultHistoryLimit = 20
)
