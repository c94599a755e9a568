package account

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// AddressLen is the length of an encoded Algorand address.
const AddressLen = 58

// Alphabet is the base32 alphabet addresses are encoded with. 0, 1, 8
// and 9 never appear in a valid address.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Account is one randomly generated keypair with its encoded address.
type Account struct {
	Address    string
	PrivateKey ed25519.PrivateKey
}

// Generate creates a fresh random keypair. Fails only if the system
// entropy source does.
func Generate() (Account, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Account{}, fmt.Errorf("generate keypair: %w", err)
	}
	return Account{Address: encodeAddress(pub), PrivateKey: priv}, nil
}

// Phrase derives the 25-word recovery phrase for a private key.
func Phrase(sk ed25519.PrivateKey) (string, error) {
	return mnemonic.FromPrivateKey(sk)
}

// FromPhrase rebuilds the account a recovery phrase encodes.
func FromPhrase(phrase string) (Account, error) {
	sk, err := mnemonic.ToPrivateKey(phrase)
	if err != nil {
		return Account{}, fmt.Errorf("decode phrase: %w", err)
	}
	pub, ok := sk.Public().(ed25519.PublicKey)
	if !ok {
		return Account{}, fmt.Errorf("unexpected public key type %T", sk.Public())
	}
	return Account{Address: encodeAddress(pub), PrivateKey: sk}, nil
}

func encodeAddress(pub ed25519.PublicKey) string {
	var a types.Address
	copy(a[:], pub)
	return a.String()
}
