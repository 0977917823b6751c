package configuration

import "fmt"

type ServerConfiguration struct {
	Address string
	Port    uint16
}

func DefServerConfiguration() *ServerConfiguration {
	return &ServerConfiguration{
		Address: "0.0.0.0",
		Port:    3000,
	}
}

// ListenAddress returns the address and port joined for net.Listen.
func (c *ServerConfiguration) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
