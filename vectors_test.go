package blake2f

import (
	"flag"
	"os"

	"github.com/goccy/go-json"
	fasthex "github.com/tmthrgd/go-hex"
)

var long = flag.Bool("long", false, "run the vector with 2^32-1 rounds")

type vector struct {
	Name     string `json:"name"`
	Rounds   uint32 `json:"rounds"`
	Final    bool   `json:"final"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

func (v vector) input() []byte { return mustDecodeHex(v.Input) }

type errorVector struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Value int    `json:"value"`
}

func (v errorVector) input() []byte { return mustDecodeHex(v.Input) }

var vectors = func() (vf struct {
	Fast   []vector      `json:"fast"`
	Slow   []vector      `json:"slow"`
	Long   []vector      `json:"long"`
	Errors []errorVector `json:"errors"`
}) {
	data, err := os.ReadFile("testdata/eip152.json")
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &vf); err != nil {
		panic(err)
	}
	return vf
}()

func mustDecodeHex(s string) []byte {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return buf
}
