package version

// Version is the CLI version, overridden at build time with
// -ldflags "-X github.com/markusproject/markusapi/internal/version.Version=...".
var Version = "0.3.0-dev"
