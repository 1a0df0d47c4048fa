package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App              App
		DiagnosticCenter DiagnosticCenter
		JWT              JWT
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		// EmbeddedViewerEnabled gates the embedded file viewer display mode.
		// Kept off; the thumbnail grid is the shipped experience.
		EmbeddedViewerEnabled      bool
		RabbitMQReportEventQueue   string
		SignedURLExpiryTimeInHours int
		SignerRequestsPerSecond    int
		DCDetailCacheTTLInMinutes  int
	}

	DiagnosticCenter struct {
		BaseUrl string
	}

	JWT struct {
		Secret string
	}
)
