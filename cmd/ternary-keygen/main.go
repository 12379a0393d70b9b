// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command ternary-keygen is a small demonstration CLI over the signing
// package: it derives addresses, signs a bundle hash and verifies a
// signature set. It never talks to a node and persists nothing
// between runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	logger "github.com/sphinx-core/ternary/src/log"
	"github.com/sphinx-core/ternary/src/signing"
	"go.uber.org/zap"
)

func main() {
	var (
		seed          = flag.String("seed", "", "seed trytes (required)")
		security      = flag.Int("security", 2, "security level (1-3)")
		index         = flag.Int("index", 0, "key index")
		withChecksum  = flag.Bool("checksum", false, "append the 9-tryte checksum to a generated address")
		sign          = flag.Bool("sign", false, "sign -bundle instead of generating an address")
		bundle        = flag.String("bundle", "", "81-tryte bundle hash, required with -sign or -verify-address")
		verifyAddress = flag.String("verify-address", "", "address (no checksum) to verify signature fragments against; fragments are read one per line from stdin")
		useJSON       = flag.Bool("json", false, "use structured (zap) logging instead of the plain leveled logger")
		debug         = flag.Bool("debug", false, "enable debug-level logging")
	)
	flag.Parse()

	var zlog *zap.Logger
	if *useJSON {
		var err error
		zlog, err = logger.NewStructured(*debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "build structured logger: %v\n", err)
			os.Exit(1)
		}
		defer zlog.Sync()
	} else if *debug {
		logger.SetLevel(logger.DEBUG)
	}

	fail := func(step string, err error) {
		if zlog != nil {
			zlog.Error(step, zap.Error(err))
		} else {
			logger.Error("%s: %v", step, err)
		}
		os.Exit(1)
	}

	switch {
	case *verifyAddress != "":
		fragments, err := readFragments(os.Stdin)
		if err != nil {
			fail("read signature fragments", err)
		}
		ok, err := signing.Verify(*verifyAddress, fragments, *bundle)
		if err != nil {
			fail("verify", err)
		}
		fmt.Println(ok)

	case *sign:
		fragments, err := signing.Sign(*seed, *security, *index, *bundle)
		if err != nil {
			fail("sign", err)
		}
		for _, f := range fragments {
			fmt.Println(f)
		}

	default:
		address, err := signing.NewAddress(*seed, *security, *index, *withChecksum)
		if err != nil {
			fail("new address", err)
		}
		fmt.Println(address)
	}
}

func readFragments(in *os.File) ([]string, error) {
	var fragments []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			fragments = append(fragments, line)
		}
	}
	return fragments, scanner.Err()
}
