package cmd

import (
	"fmt"
	"time"

	"github.com/andrewpaige1/studysnap-api/auth"
	"github.com/andrewpaige1/studysnap-api/config"
	"github.com/spf13/cobra"
)

var (
	tokenSubject  string
	tokenNickname string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for local development",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, err := auth.CreateToken(cfg.JWT, tokenSubject, tokenNickname, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "sub", "", "token subject (user id)")
	tokenCmd.Flags().StringVar(&tokenNickname, "nickname", "", "nickname claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("sub")
	rootCmd.AddCommand(tokenCmd)
}
