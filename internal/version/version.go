package version

// Set via -ldflags at build time.
var (
	AppName    = "net-chan"
	AppVersion = "dev"
)
