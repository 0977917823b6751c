package configuration

type LogConfiguration struct {
	// Level is a level name understood by log/common.ParseLevel.
	Level string
	// Format is "text" or "json".
	Format string
}

func DefLogConfiguration() *LogConfiguration {
	return &LogConfiguration{
		Level:  "info",
		Format: "text",
	}
}
