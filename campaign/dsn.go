package campaign

import (
	"net/url"
	"os"
)

func envOrDefault(key string, fallback string) string {

	v := os.Getenv(key)

	if v == "" {
		return fallback
	}

	return v
}

// DSNFromEnv builds a Postgres DSN from the PG_* environment variables:
// PG_HOST, PG_PORT, PG_USER, PG_PASSWORD, PG_DB and PG_SSLMODE, falling
// back to local defaults for anything unset.
func DSNFromEnv() string {

	user := url.User(envOrDefault("PG_USER", "postgres"))

	if pass := os.Getenv("PG_PASSWORD"); pass != "" {
		user = url.UserPassword(user.Username(), pass)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     envOrDefault("PG_HOST", "localhost") + ":" + envOrDefault("PG_PORT", "5432"),
		Path:     "/" + envOrDefault("PG_DB", "campaigns"),
		RawQuery: "sslmode=" + envOrDefault("PG_SSLMODE", "disable"),
	}

	return u.String()
}
