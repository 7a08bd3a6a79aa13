package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/factor-chain/factor/x/factoring/types"
)

// GetTxCmd returns the transaction commands for the factoring module
func GetTxCmd() *cobra.Command {
	factoringTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Factoring transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	factoringTxCmd.AddCommand(
		CmdSubmitProblem(),
		CmdResolveProblem(),
	)

	return factoringTxCmd
}

// CmdSubmitProblem returns a CLI command handler for submitting a factorization problem
func CmdSubmitProblem() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-problem [number] [reward]",
		Short: "Post a factorization bounty",
		Long: `Post a number to be factored along with a reward, which is locked in
escrow until someone resolves the problem.

Example:
  $ factord tx factoring submit-problem 1643 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			number, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid number: %s (must be integer)", args[0])
			}
			if !types.FitsUint128(number) {
				return fmt.Errorf("number %s does not fit in 128 bits", number)
			}

			reward, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid reward: %s (must be integer)", args[1])
			}
			if reward.IsNegative() {
				return fmt.Errorf("reward must not be negative")
			}

			msg := &types.MsgSubmitProblem{
				Submitter: clientCtx.GetFromAddress().String(),
				Number:    number,
				Reward:    reward,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResolveProblem returns a CLI command handler for resolving a posted problem
func CmdResolveProblem() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-problem [number] [factor-a] [factor-b]",
		Short: "Claim a bounty with a prime factorization",
		Long: `Submit two prime factors for a posted number. If the factorization
checks out, the escrowed reward is settled and your share paid out.

Example:
  $ factord tx factoring resolve-problem 1643 31 53 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			number, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid number: %s (must be integer)", args[0])
			}

			factorA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid factor-a: %s (must be integer)", args[1])
			}

			factorB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid factor-b: %s (must be integer)", args[2])
			}

			msg := &types.MsgResolveProblem{
				Resolver: clientCtx.GetFromAddress().String(),
				Number:   number,
				FactorA:  factorA,
				FactorB:  factorB,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
