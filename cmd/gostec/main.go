// Command gostec lists, self-tests and exercises the GOST curves from the
// command line.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
	"github.com/smallyu/go-gostcrypto/pkg/gost"
)

const envPrefix = "GOSTEC"

func main() {
	// On failure cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if newRootCmd(viper.New()).Execute() != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	root := &cobra.Command{
		Use:          "gostec",
		Short:        "GOST R 34.10-2012 elliptic curve tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logger, err := newLogger(v.GetString("log-level"))
			if err != nil {
				return err
			}
			gost.SetLogger(logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		curvesCmd(),
		selfTestCmd(v),
		keygenCmd(v),
		signCmd(v),
		verifyCmd(v),
	)
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// addCurveFlag registers --curve on fs.
func addCurveFlag(fs *pflag.FlagSet) {
	fs.String("curve", curves.GOST256A, "curve name or OID")
}

func lookupCurve(v *viper.Viper) (*gost.Curve, error) {
	id := v.GetString("curve")
	c, err := gost.CurveByName(id)
	if errors.Is(err, gost.ErrUnknownCurve) {
		return gost.CurveByOID(id)
	}
	return c, err
}
