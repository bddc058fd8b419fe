package version

// Version is overridden at build time with
// -ldflags "-X github.com/bnema/school-accounts-cli/internal/version.Version=...".
var Version = "dev"
