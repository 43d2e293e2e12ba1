package assistant

import "embed"

//go:embed migrations
var MigrationsFS embed.FS
