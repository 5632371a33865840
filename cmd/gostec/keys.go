package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-gostcrypto/pkg/gost"
)

func keygenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := lookupCurve(v)
			if err != nil {
				return err
			}
			priv, err := gost.GenerateKey(rand.Reader, c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "private: %x\n", priv.Bytes())
			fmt.Fprintf(out, "public:  %x\n", priv.Public().Bytes())
			return nil
		},
	}
	addCurveFlag(cmd.Flags())
	return cmd
}

func signCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a hex digest with a hex private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := lookupCurve(v)
			if err != nil {
				return err
			}
			raw, err := hexFlag(v, "key")
			if err != nil {
				return err
			}
			digest, err := hexFlag(v, "digest")
			if err != nil {
				return err
			}
			priv, err := gost.NewPrivateKey(c, raw)
			if err != nil {
				return err
			}
			sig, err := priv.Sign(rand.Reader, digest)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", sig)
			return nil
		},
	}
	addCurveFlag(cmd.Flags())
	cmd.Flags().String("key", "", "private key, hex")
	cmd.Flags().String("digest", "", "message digest, hex")
	return cmd
}

func verifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an s||r signature over a hex digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := lookupCurve(v)
			if err != nil {
				return err
			}
			raw, err := hexFlag(v, "pub")
			if err != nil {
				return err
			}
			digest, err := hexFlag(v, "digest")
			if err != nil {
				return err
			}
			sig, err := hexFlag(v, "sig")
			if err != nil {
				return err
			}
			pub, err := gost.ParsePublicKey(c, raw)
			if err != nil {
				return err
			}
			if err := pub.Verify(digest, sig); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature ok")
			return nil
		},
	}
	addCurveFlag(cmd.Flags())
	cmd.Flags().String("pub", "", "public key X||Y, hex")
	cmd.Flags().String("digest", "", "message digest, hex")
	cmd.Flags().String("sig", "", "signature s||r, hex")
	return cmd
}

func hexFlag(v *viper.Viper, name string) ([]byte, error) {
	s := v.GetString(name)
	if s == "" {
		return nil, errors.Errorf("--%s is required", name)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return b, nil
}
