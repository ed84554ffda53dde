package configs

import (
	_ "embed"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"zipcode-web/pkg/msg"
	"zipcode-web/pkg/resource"
)

//go:embed application.yml
var applicationProperties []byte

//go:embed messages.yml
var messageCatalogue []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

// init loads .env (when present), the application properties and the message catalogue.
// PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH replace the embedded defaults.
func init() {
	_ = godotenv.Load()
	viper.AutomaticEnv()

	if err := loadCatalogue("PROPERTIES_FILE_PATH", applicationProperties, resource.LoadFile, resource.Load); err != nil {
		log.Fatalf("Fail to load application properties: %v", err)
	}
	if err := loadCatalogue("MESSAGES_FILE_PATH", messageCatalogue, msg.LoadFile, msg.Load); err != nil {
		log.Fatalf("Fail to load messages: %v", err)
	}

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", resource.GetString("app.name")),
		ContextPath:     resource.GetString("app.server.context-path"),
	}
}

func loadCatalogue(envKey string, embedded []byte, fromFile func(string) error, fromBytes func([]byte) error) error {
	if path, ok := os.LookupEnv(envKey); ok && path != "" {
		return fromFile(path)
	}
	return fromBytes(embedded)
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
