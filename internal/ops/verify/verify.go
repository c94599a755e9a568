// Package verify re-checks a results file: every stored phrase must
// derive the keypair its recorded address encodes.
package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tyler-smith/go-bip39/wordlists"

	"algovanity/internal/account"
	"algovanity/internal/store"
	"algovanity/pkg/logx"
)

// phraseWords is the word count of a recovery phrase: 24 words of key
// material plus one checksum word.
const phraseWords = 25

type Options struct {
	Input string // path of the results file
}

// Run verifies every record in the file. Individual bad records are
// logged and counted; Run fails if any record fails or the file holds
// no records.
func Run(ctx context.Context, opt Options) error {
	app := logx.S()

	results, err := store.Load(opt.Input)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no results in %q", opt.Input)
	}

	words := englishWords()
	start := time.Now()
	var okCnt, failCnt int
	for i, r := range results {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := check(r, words); err != nil {
			failCnt++
			app.Errorw("record failed verification", "index", i, "address", r.Address, "err", err)
			continue
		}
		okCnt++
	}

	app.Infow("verify finished",
		"file", opt.Input,
		"ok", okCnt,
		"failed", failCnt,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	if failCnt > 0 {
		return fmt.Errorf("%d of %d record(s) failed verification", failCnt, len(results))
	}
	return nil
}

func check(r store.Result, words map[string]struct{}) error {
	fields := strings.Fields(r.Mnemonic)
	if len(fields) != phraseWords {
		return fmt.Errorf("phrase has %d words, want %d", len(fields), phraseWords)
	}
	for _, w := range fields {
		if _, ok := words[w]; !ok {
			return fmt.Errorf("word %q is not in the phrase wordlist", w)
		}
	}
	acct, err := account.FromPhrase(r.Mnemonic)
	if err != nil {
		return err
	}
	if acct.Address != r.Address {
		return fmt.Errorf("phrase derives %s, file records %s", acct.Address, r.Address)
	}
	return nil
}

// englishWords indexes the BIP-39 English list, which is also the
// phrase wordlist for this chain.
func englishWords() map[string]struct{} {
	m := make(map[string]struct{}, len(wordlists.English))
	for _, w := range wordlists.English {
		m[w] = struct{}{}
	}
	return m
}
