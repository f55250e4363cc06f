package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/advisory-trading/market-analysis-agent/pkg/provider"
	"github.com/advisory-trading/market-analysis-agent/pkg/service"
)

var (
	portFlag int
	hostFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the market analysis A2A agent",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			modelID := viper.GetString("model.id")
			region := viper.GetString("model.region")

			prvdr := provider.NewBedrockProvider(
				cmd.Context(),
				provider.WithModel(modelID),
				provider.WithRegion(region),
				provider.WithMaxTokens(viper.GetInt64("model.max_tokens")),
			)

			srv := service.NewAgentServer(prvdr, modelID, region)

			port := portFlag
			if port == 0 {
				port = viper.GetInt("server.port")
			}

			addr := fmt.Sprintf("%s:%d", hostFlag, port)
			log.Info("starting agent server",
				"addr", addr, "model", modelID, "region", region)

			return srv.Start(addr)
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "Port to serve on (defaults to config)")
	serveCmd.Flags().StringVarP(&hostFlag, "host", "H", "0.0.0.0", "Host address to bind to")
}

var longServe = `
Serve the market analysis agent.

The agent publishes its card on /.well-known/agent.json and accepts tasks
on /tasks/send (plain) and /rpc (JSON-RPC 2.0).

Examples:
  # Serve on the configured port
  market-analysis-agent serve

  # Serve on port 3210
  market-analysis-agent serve --port 3210
`
