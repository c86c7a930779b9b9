package goConsole

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"
	"sync/atomic"

	"github.com/MrEthical07/goConsole/secret"
)

// authFSM is the password gate in front of the command loop. Transitions
// happen only on the session task; the state cell is atomic solely so other
// goroutines can observe it through [Console.AuthState].
type authFSM struct {
	state    atomic.Int32
	failures atomic.Uint64

	// Exactly one of secretDigest or secretHash is populated, depending on
	// whether the deployment configured a plaintext secret or a PHC hash.
	secretDigest [sha256.Size]byte
	secretHash   string
	usesHash     bool
}

func newAuthFSM(cfg AuthConfig) *authFSM {
	f := &authFSM{}
	if cfg.SecretHash != "" {
		f.secretHash = cfg.SecretHash
		f.usesHash = true
	} else {
		f.secretDigest = sha256.Sum256([]byte(cfg.Secret))
	}
	f.state.Store(int32(StateAwaitingPrompt))
	return f
}

// State returns the current state. Safe from any goroutine.
func (f *authFSM) State() AuthState {
	return AuthState(f.state.Load())
}

func (f *authFSM) setState(s AuthState) {
	f.state.Store(int32(s))
}

// Failures returns the number of rejected attempts since startup.
func (f *authFSM) Failures() uint64 {
	return f.failures.Load()
}

// verify checks a completed line against the configured secret. Trailing
// CR/LF is stripped so that a terminal sending CRLF still matches. The
// comparison is constant-time in both the plaintext and hashed modes.
func (f *authFSM) verify(input string) bool {
	attempt := strings.TrimRight(input, "\r\n")

	if f.usesHash {
		ok, err := secret.Verify(attempt, f.secretHash)
		if err != nil || !ok {
			f.failures.Add(1)
			return false
		}
		return true
	}

	digest := sha256.Sum256([]byte(attempt))
	if subtle.ConstantTimeCompare(digest[:], f.secretDigest[:]) != 1 {
		f.failures.Add(1)
		return false
	}
	return true
}
