// Package secret provides argon2id hashing for the console password, so a
// deployment can carry a PHC-format hash in its configuration instead of the
// plaintext secret. Verification is constant-time over the derived keys.
package secret
