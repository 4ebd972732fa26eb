package conf

import (
	"fmt"
	"os"
)

// ServerConf is the environment-derived configuration of the API server.
// Values are read once at startup; the judge credentials are passed into the
// judge client at construction instead of being read ambiently.
type ServerConf struct {
	Address string
	JwtKey  string

	Judge0BaseUrl string
	Judge0ApiKey  string
	Judge0ApiHost string

	AwsRegion        string
	ProblemsTable    string
	UsersTable       string
	SubmissionsTable string
}

func FromEnv() ServerConf {
	return ServerConf{
		Address: getenvDefault("HTTP_ADDRESS", ":8080"),
		JwtKey:  mustGetenv("JWT_KEY"),

		Judge0BaseUrl: getenvDefault("JUDGE0_BASE_URL", "https://judge0-ce.p.rapidapi.com"),
		Judge0ApiKey:  os.Getenv("JUDGE0_API_KEY"),
		Judge0ApiHost: getenvDefault("JUDGE0_API_HOST", "judge0-ce.p.rapidapi.com"),

		AwsRegion:        getenvDefault("AWS_REGION", "eu-central-1"),
		ProblemsTable:    getenvDefault("DDB_PROBLEMS_TABLE", "problems"),
		UsersTable:       getenvDefault("DDB_USERS_TABLE", "users"),
		SubmissionsTable: getenvDefault("DDB_SUBMISSIONS_TABLE", "submissions"),
	}
}

func mustGetenv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("%s is not set", key))
	}
	return value
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
