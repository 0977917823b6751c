package configuration

type RemoteConfiguration struct {
	// Endpoint overrides the full remote JSON-RPC url when non-empty;
	// otherwise the Alchemy base url joined with APIKey is used.
	Endpoint string
	APIKey   string
}

func DefRemoteConfiguration() *RemoteConfiguration {
	return &RemoteConfiguration{}
}
