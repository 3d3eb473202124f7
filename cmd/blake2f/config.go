package main

import (
	"time"

	"github.com/spf13/pflag"
)

type config struct {
	Rounds    uint64
	MaxRounds uint64
	Timeout   time.Duration
	JSON      bool
	Verbose   bool

	overrideRounds bool
}

func (c *config) bind(fs *pflag.FlagSet) {
	fs.Uint64Var(&c.Rounds, "rounds", 0, "use this many rounds instead of the rounds field of each input")
	fs.Uint64Var(&c.MaxRounds, "max-rounds", 0, "reject inputs asking for more rounds than this (0 is unlimited)")
	fs.DurationVar(&c.Timeout, "timeout", 0, "give up on an input after this long (0 is unlimited)")
	fs.BoolVar(&c.JSON, "json", false, "print a JSON object for every input")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "enable debug logging")
}

// rounds returns the number of rounds to run for an input that encodes
// the given count.
func (c *config) rounds(encoded uint32) uint64 {
	if c.overrideRounds {
		return c.Rounds
	}
	return uint64(encoded)
}
