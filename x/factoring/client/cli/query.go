package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/factor-chain/factor/x/factoring/types"
)

// GetQueryCmd returns the cli query commands for the factoring module
func GetQueryCmd() *cobra.Command {
	factoringQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the factoring module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	factoringQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryProblem(),
		GetCmdQueryProblems(),
	)

	return factoringQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current factoring module parameters",
		Long: `Query the current parameters of the factoring module, including the
resolver share and the existential minimum.

Example:
  $ factord query factoring params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProblem returns the command to query a problem by number
func GetCmdQueryProblem() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problem [number]",
		Short: "Query a factorization problem by number",
		Long: `Query a posted factorization problem, including its reward and, once
resolved, the accepted factors.

Example:
  $ factord query factoring problem 1643`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			number, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid number: %s (must be integer)", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Problem(context.Background(), &types.QueryProblemRequest{
				Number: number.String(),
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProblems returns the command to query all problems
func GetCmdQueryProblems() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Query all factorization problems",
		Long: `Query every posted factorization problem, open and resolved.

Example:
  $ factord query factoring problems
  $ factord query factoring problems --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Problems(context.Background(), &types.QueryProblemsRequest{
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "problems")
	return cmd
}
