package configuration

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// AlchemyAPIKeyEnvVar names the environment variable holding the remote
// API key when it is not passed as a flag.
const AlchemyAPIKeyEnvVar = "ALCHEMY_API_KEY"

var ErrNoAlchemyAPIKey = errors.New("no Alchemy API key provided: pass --key or set the ALCHEMY_API_KEY environment variable")

type Configuration struct {
	Server *ServerConfiguration
	Remote *RemoteConfiguration
	Log    *LogConfiguration
}

func DefConfiguration() *Configuration {
	return &Configuration{
		Server: DefServerConfiguration(),
		Remote: DefRemoteConfiguration(),
		Log:    DefLogConfiguration(),
	}
}

// ResolveAPIKey fills Remote.APIKey from the environment when no flag
// provided one. A .env file in the working directory is honored. An
// explicit Endpoint makes the key optional.
func (c *Configuration) ResolveAPIKey() error {
	if c.Remote.APIKey != "" || c.Remote.Endpoint != "" {
		return nil
	}
	_ = godotenv.Load()
	c.Remote.APIKey = os.Getenv(AlchemyAPIKeyEnvVar)
	if c.Remote.APIKey == "" {
		return ErrNoAlchemyAPIKey
	}
	return nil
}
