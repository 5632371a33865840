package gost

import (
	"crypto/rand"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
)

var (
	logger = zap.NewNop()

	selfTestOnce sync.Once
	admitted     map[string]*curves.Params
	rejected     map[string]error
)

// SetLogger installs the logger used by the self-test. It must be called before
// the first curve lookup to take effect for that run.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// SelfTest validates every registered curve once per process and returns the
// rejections keyed by curve name. Later calls return the first run's result.
// Lookups call it implicitly with crypto/rand.
func SelfTest(random io.Reader) map[string]error {
	selfTestOnce.Do(func() {
		admitted, rejected = runSelfTest(random, logger)
	})
	out := make(map[string]error, len(rejected))
	for name, err := range rejected {
		out[name] = err
	}
	return out
}

func runSelfTest(random io.Reader, log *zap.Logger) (map[string]*curves.Params, map[string]error) {
	ok := make(map[string]*curves.Params)
	bad := make(map[string]error)
	for _, name := range curves.Names() {
		c, err := curves.ByName(name)
		if err == nil {
			err = c.Validate(random)
		}
		if err != nil {
			log.Warn("curve rejected", zap.String("curve", name), zap.Error(err))
			bad[name] = &RejectedCurve{Name: name, Err: err}
			continue
		}
		log.Debug("curve admitted",
			zap.String("curve", name),
			zap.String("oid", c.OID),
			zap.Int("bits", c.BitSize()),
			zap.Uint64("cofactor", c.Cofactor),
		)
		ok[name] = c
	}
	log.Info("self-test finished", zap.Int("admitted", len(ok)), zap.Int("rejected", len(bad)))
	return ok, bad
}

func ensureSelfTest() {
	SelfTest(rand.Reader)
}
