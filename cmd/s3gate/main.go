package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "s3gate",
	Short:   "HTTP gateway for objects in an S3-compatible store",
	Long: `s3gate serves objects held in an S3-compatible object store as plain
HTTP resources. Clients GET a URL path and receive the object's bytes
streamed back with proper content type, range, and caching headers,
without needing store credentials.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./s3gate.yaml)")
	rootCmd.PersistentFlags().String("endpoint", "", "object store endpoint (default: s3.amazonaws.com, env: S3GATE_STORE_ENDPOINT)")
	rootCmd.PersistentFlags().String("region", "", "object store region (default: us-east-1, env: S3GATE_STORE_REGION)")
	rootCmd.PersistentFlags().String("bucket", "", "default bucket; empty means the URL names the bucket (env: S3GATE_STORE_BUCKET)")

	_ = viper.BindPFlag("store.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("store.region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("store.bucket", rootCmd.PersistentFlags().Lookup("bucket"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
