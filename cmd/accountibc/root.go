package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of the environment variables overriding the tool's flags
	EnvPrefix = "ACCOUNTIBC"

	flagOutput = "output"
	flagBase64 = "base64"
	flagHost   = "host-module"

	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd creates the root command of the account ibc operator tool. Every flag can also be
// provided through an ACCOUNTIBC_ prefixed environment variable.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "accountibc",
		Short: "Offline inspection tool for account ibc chains, packets and genesis files",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			switch output := v.GetString(flagOutput); output {
			case outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unsupported output format %q, expected %s or %s", output, outputJSON, outputYAML)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputJSON, "output format (json|yaml)")

	rootCmd.AddCommand(
		ChainIdentityCmd(v),
		AccountIDCmd(v),
		AddressCmd(v),
		DecodePacketCmd(v),
		DecodeAckCmd(v),
		ValidateGenesisCmd(v),
	)

	return rootCmd
}
