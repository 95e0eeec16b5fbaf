package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"portfolio/version"

	"github.com/joho/godotenv"
)

// Config holds portfolio backend runtime configuration.
type Config struct {
	LogLevel     string
	LogFilePath  string
	Port         int
	DatabasePath string
	SiteRoot     string

	SQLitePragmasEnabled bool
	SQLiteBusyTimeoutMS  int
	SQLiteJournalMode    string
	SQLiteSynchronous    string
	SQLiteForeignKeys    bool
	SQLiteMaxOpenConns   int
	SQLiteMaxIdleConns   int
	SQLiteConnMaxIdleSec int
	SQLiteConnMaxLifeSec int

	// Analytics event retention: rows beyond this count are pruned oldest-first.
	AnalyticsMaxEvents int

	// Resend email notification for new contact messages.
	// Disabled when the API key is empty.
	ResendAPIKey string
	EmailFrom    string
	EmailTo      string
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

func init() {
	// Optional .env file in the working directory.
	_ = godotenv.Load()

	Settings = &Config{
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogFilePath:  getEnv("LOG_FILE", "./portfolio.log"),
		Port:         getEnvInt("PORT", 5000),
		DatabasePath: getEnv("DATABASE_PATH", defaultDatabasePath()),
		SiteRoot:     getEnv("SITE_ROOT", defaultSiteRoot()),

		SQLitePragmasEnabled: getEnvBool("SQLITE_PRAGMAS_ENABLED", true),
		SQLiteBusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:    getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		SQLiteSynchronous:    getEnv("SQLITE_SYNCHRONOUS", "NORMAL"),
		SQLiteForeignKeys:    getEnvBool("SQLITE_FOREIGN_KEYS", true),
		SQLiteMaxOpenConns:   getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		SQLiteMaxIdleConns:   getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		SQLiteConnMaxIdleSec: getEnvInt("SQLITE_CONN_MAX_IDLE_SECONDS", 300),
		SQLiteConnMaxLifeSec: getEnvInt("SQLITE_CONN_MAX_LIFETIME_SECONDS", 0),

		AnalyticsMaxEvents: getEnvInt("ANALYTICS_MAX_EVENTS", 10000),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", ""),
		EmailTo:      getEnv("EMAIL_TO", ""),
	}
}

// defaultDatabasePath resolves the store file next to the executable so the
// location stays fixed regardless of the working directory.
func defaultDatabasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "portfolio.db"
	}
	return filepath.Join(filepath.Dir(exe), "portfolio.db")
}

func defaultSiteRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "public"
	}
	return filepath.Join(filepath.Dir(exe), "public")
}

// ParseFlags parses command-line flags, applies any overrides to the package-level
// Settings, and handles --help and --version (print and exit).
// A YAML config file given via --config is applied before explicit flag overrides.
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Portfolio backend\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Log file path (default ./portfolio.log)")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 5000)")
		fmt.Fprintln(out, "  DATABASE_PATH                     SQLite database path (default portfolio.db next to the binary)")
		fmt.Fprintln(out, "  SITE_ROOT                         Static site root directory (default public next to the binary)")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_FOREIGN_KEYS               Enable SQLite foreign_keys (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             SQLite MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             SQLite MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      SQLite ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  SQLite ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "  ANALYTICS_MAX_EVENTS              Max retained analytics events (default 10000)")
		fmt.Fprintln(out, "  RESEND_API_KEY                    Resend API key for contact notifications (empty disables email)")
		fmt.Fprintln(out, "  EMAIL_FROM                        Sender address for contact notifications")
		fmt.Fprintln(out, "  EMAIL_TO                          Recipient address for contact notifications")
	}

	configFile := flag.String("config", "", "YAML config file (overrides environment, overridden by explicit flags)")
	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	db := flag.String("db", Settings.DatabasePath, "SQLite database path (overrides DATABASE_PATH)")
	siteRoot := flag.String("site-root", Settings.SiteRoot, "Static site root directory (overrides SITE_ROOT)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path (overrides LOG_FILE)")
	analyticsMax := flag.Int("analytics-max-events", Settings.AnalyticsMaxEvents, "Max retained analytics events (overrides ANALYTICS_MAX_EVENTS)")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *configFile != "" {
		if err := Settings.applyFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config file: %v\n", err)
			os.Exit(1)
		}
		// Explicitly passed flags still win over the file.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "port":
				Settings.Port = *port
			case "db":
				Settings.DatabasePath = *db
			case "site-root":
				Settings.SiteRoot = *siteRoot
			case "log-level":
				Settings.LogLevel = *logLevel
			case "log-file":
				Settings.LogFilePath = *logFile
			case "analytics-max-events":
				Settings.AnalyticsMaxEvents = *analyticsMax
			}
		})
		return
	}

	Settings.Port = *port
	Settings.DatabasePath = *db
	Settings.SiteRoot = *siteRoot
	Settings.LogLevel = *logLevel
	Settings.LogFilePath = *logFile
	Settings.AnalyticsMaxEvents = *analyticsMax
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
