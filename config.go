package main

type Config struct {
	// LogPath holds the absolute path to the folder containing the visit log files
	LogPath string `env:"LOGPATH" env-required:"true"`
	// Port defines the port number in which the webserver listens for requests
	Port string `env:"PORT" env-default:"3000"`
	// DbPath points to the visits database file. Defaults to ~/webmetrics/database.db
	DbPath string `env:"DBPATH"`
	// Timezone is the default timezone used to resolve relative dates in report requests
	Timezone string `env:"TIMEZONE" env-default:"UTC"`
	// SkipImport signals whether to skip importing the visit logs on startup
	SkipImport bool `env:"SKIPIMPORT" env-default:"false"`
}
