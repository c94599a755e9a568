package account

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAddressShape(t *testing.T) {
	acct, err := Generate()
	require.NoError(t, err)

	require.Len(t, acct.Address, AddressLen)
	for i := 0; i < len(acct.Address); i++ {
		require.True(t, strings.ContainsRune(Alphabet, rune(acct.Address[i])),
			"address %q has %q outside the alphabet", acct.Address, acct.Address[i])
	}
	require.Len(t, []byte(acct.PrivateKey), 64)
}

func TestGenerateIsRandom(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)
	require.NotEqual(t, a.Address, b.Address)
}

func TestPhraseRoundTrip(t *testing.T) {
	acct, err := Generate()
	require.NoError(t, err)

	phrase, err := Phrase(acct.PrivateKey)
	require.NoError(t, err)
	require.Len(t, strings.Fields(phrase), 25)

	back, err := FromPhrase(phrase)
	require.NoError(t, err)
	require.Equal(t, acct.Address, back.Address)
}

func TestFromPhraseRejectsGarbage(t *testing.T) {
	_, err := FromPhrase("definitely not a recovery phrase")
	require.Error(t, err)
}
