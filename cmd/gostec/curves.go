package main

import (
	"crypto/rand"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
	"github.com/smallyu/go-gostcrypto/pkg/gost"
)

func curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the curves admitted by the self-test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOID\tBITS\tCOFACTOR")
			for _, c := range gost.Curves() {
				oid := c.OID()
				if oid == "" {
					oid = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", c.Name(), oid, c.BitSize(), c.Cofactor())
			}
			return w.Flush()
		},
	}
}

func selfTestCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Validate every registered curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var errs error
			rejected := gost.SelfTest(rand.Reader)
			for _, name := range curves.Names() {
				if err, ok := rejected[name]; ok {
					errs = multierr.Append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", name)
			}

			if v.GetBool("crosscheck") {
				rounds := v.GetInt("rounds")
				errs = multierr.Append(errs, crossCheck(cmd, rounds))
			}
			return errs
		},
	}
	cmd.Flags().Bool("crosscheck", false, "compare secp256k1 and wei25519 against independent implementations")
	cmd.Flags().Int("rounds", 16, "random scalars per cross-check")
	return cmd
}

func crossCheck(cmd *cobra.Command, rounds int) error {
	k1, err := curves.ByName(curves.Secp256k1Name)
	if err != nil {
		return err
	}
	err = multierr.Combine(
		curves.CrossCheck(curves.NewCurve(k1), curves.NewSecp256k1(), rand.Reader, rounds),
		curves.CrossCheckEdwards25519(rand.Reader, rounds),
	)
	if err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "ok    cross-check (%d rounds)\n", rounds)
	}
	return err
}
