package config

const (
	// DefaultDatabasePath is the default path for the word cache database
	DefaultDatabasePath = "./words.db"

	// DefaultPort matches the port the service has always listened on
	DefaultPort = 5678
)
