package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ojo-network/contractMonitor/pkg/gateway/cmd"
)

func main() {
	rootCmd := cmd.GatewayCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
