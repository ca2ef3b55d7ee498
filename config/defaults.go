package config

import "time"

// defaultConfig is the default configuration for this project
var defaultConfig = config{
	Providers: providers{
		Storage: "mariadb",
	},
	Database: database{
		DSN:             "trackhaus@unix(/run/mysqld/mysqld.sock)/trackhaus",
		MaxOpenConns:    16,
		MaxIdleConns:    4,
		ConnMaxLifetime: Duration(time.Minute * 5),
		ConnectTimeout:  Duration(time.Second * 30),
	},
	Website: website{
		Addr:            "localhost:8080",
		MetricsAddr:     "",
		RateLimit:       120,
		RateLimitWindow: Duration(time.Minute),
		ShutdownTimeout: Duration(time.Second * 10),
	},
	Telemetry: telemetry{
		Use:      false,
		Endpoint: "localhost:4317",
	},
}
