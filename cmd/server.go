package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/gastimator/alchemyrpc"
	"github.com/TopiaNetwork/gastimator/api/rest"
	"github.com/TopiaNetwork/gastimator/cache"
	"github.com/TopiaNetwork/gastimator/configuration"
	"github.com/TopiaNetwork/gastimator/gastimator"
	tplog "github.com/TopiaNetwork/gastimator/log"
	tplogcmm "github.com/TopiaNetwork/gastimator/log/common"
	"github.com/TopiaNetwork/gastimator/simulator"
)

const (
	serverFuncName = "server"
	serverCmdDes   = "Operate the gas estimation server: start."
)

var address string
var port uint16
var apiKey string
var endpoint string
var logLevel string
var logFormat string

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the server.",
	Long:  `Starts the HTTP server that estimates the gas cost of transactions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("trailing args detected")
		}
		// Parsing of the command line is done so silence cmd usage
		cmd.SilenceUsage = true

		config := configuration.DefConfiguration()
		config.Server.Address = address
		config.Server.Port = port
		config.Remote.APIKey = apiKey
		config.Remote.Endpoint = endpoint
		config.Log.Level = logLevel
		config.Log.Format = logFormat
		if err := config.ResolveAPIKey(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server, err := buildServer(config)
		if err != nil {
			return err
		}
		return server.Run(ctx)
	},
}

func buildServer(config *configuration.Configuration) (*rest.Server, error) {
	level, err := tplogcmm.ParseLevel(config.Log.Level)
	if err != nil {
		return nil, err
	}
	format := tplog.TextFormat
	if config.Log.Format == "json" {
		format = tplog.JSONFormat
	}
	mainLog, err := tplog.CreateMainLogger(level, format, tplog.StdErrOutput, "")
	if err != nil {
		return nil, err
	}

	local, err := simulator.NewEvmTxSimulator(level, mainLog)
	if err != nil {
		return nil, err
	}

	var remote *alchemyrpc.Client
	if config.Remote.Endpoint != "" {
		remote = alchemyrpc.NewClientWithEndpoint(config.Remote.Endpoint, level, mainLog)
	} else {
		remote = alchemyrpc.NewClient(config.Remote.APIKey, level, mainLog)
	}

	estimator := gastimator.NewGastimator(local, remote, cache.NewGasUsageCache(), level, mainLog)
	return rest.NewServer(config.Server, estimator, level, mainLog), nil
}

func startCmd() *cobra.Command {
	flags := serverStartCmd.PersistentFlags()
	flags.StringVarP(&address, "address", "a", "0.0.0.0", "the address the server listens on")
	flags.Uint16VarP(&port, "port", "p", 3000, "the port the server listens on")
	flags.StringVarP(&apiKey, "key", "k", "", "the Alchemy API key (or set ALCHEMY_API_KEY)")
	flags.StringVarP(&endpoint, "endpoint", "", "", "full remote JSON-RPC url, overrides the Alchemy url")
	flags.StringVarP(&logLevel, "log-level", "", "info", "log level: trace, debug, info, warn, error")
	flags.StringVarP(&logFormat, "log-format", "", "text", "log format: text or json")
	return serverStartCmd
}

var serverCmd = &cobra.Command{
	Use:   serverFuncName,
	Short: fmt.Sprint(serverCmdDes),
	Long:  fmt.Sprint(serverCmdDes),
}

func ServerCmd() *cobra.Command {
	serverCmd.AddCommand(startCmd())

	return serverCmd
}
