package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	fasthex "github.com/tmthrgd/go-hex"
	"github.com/zeebo/errs"

	"github.com/zeebo/blake2f"
)

// Error is the class of errors returned while processing inputs.
var Error = errs.Class("blake2f")

// inputError tags an error with the position of the input that caused it.
type inputError struct {
	n   int
	err error
}

func (e *inputError) Error() string { return fmt.Sprintf("#%d: %v", e.n, e.err) }
func (e *inputError) Unwrap() error { return e.err }

func failed(n int, err error) error {
	return Error.Wrap(&inputError{n: n, err: err})
}

type result struct {
	Input  string `json:"input"`
	Rounds uint64 `json:"rounds"`
	Final  bool   `json:"final"`
	Digest string `json:"digest"`
}

type processor struct {
	cfg *config
	log *logrus.Logger
	out io.Writer
	enc *json.Encoder
}

func newProcessor(cfg *config, log *logrus.Logger, out io.Writer) *processor {
	return &processor{
		cfg: cfg,
		log: log,
		out: out,
		enc: json.NewEncoder(out),
	}
}

// run processes every argument, or every non-empty line of stdin if there are
// no arguments, stopping at the first failure.
func (p *processor) run(ctx context.Context, args []string, stdin io.Reader) error {
	if len(args) > 0 {
		for n, arg := range args {
			if err := p.process(ctx, n, arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for n := 0; scanner.Scan(); {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := p.process(ctx, n, line); err != nil {
			return err
		}
		n++
	}
	return Error.Wrap(scanner.Err())
}

func (p *processor) process(ctx context.Context, n int, line string) error {
	log := p.log.WithField("input", n)

	input, err := fasthex.DecodeString(strings.TrimPrefix(line, "0x"))
	if err != nil {
		return failed(n, fmt.Errorf("invalid hex: %w", err))
	}

	params, err := blake2f.Decode(input)
	if err != nil {
		return failed(n, err)
	}

	rounds := p.cfg.rounds(params.Rounds)
	if p.cfg.MaxRounds > 0 && rounds > p.cfg.MaxRounds {
		return failed(n, errs.New("%d rounds exceeds the limit of %d", rounds, p.cfg.MaxRounds))
	}

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	digest, err := blake2f.CompressContext(ctx, rounds,
		params.State[:], params.Block[:], params.Offsets[:], params.Final)
	if err != nil {
		log.WithField("elapsed", time.Since(start)).Debug("stopped")
		return failed(n, err)
	}

	log.WithFields(logrus.Fields{
		"rounds":  rounds,
		"final":   params.Final,
		"elapsed": time.Since(start),
	}).Debug("compressed")

	return p.write(result{
		Input:  fasthex.EncodeToString(input),
		Rounds: rounds,
		Final:  params.Final,
		Digest: fasthex.EncodeToString(digest[:]),
	})
}

func (p *processor) write(res result) error {
	if p.cfg.JSON {
		return Error.Wrap(p.enc.Encode(res))
	}
	_, err := fmt.Fprintln(p.out, res.Digest)
	return Error.Wrap(err)
}
