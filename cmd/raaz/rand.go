package main

import (
	"flag"
	"log"
	"os"

	"github.com/SooryaN/raaz/rand"
	"github.com/SooryaN/raaz/securemem"
)

func cmdRand(conf Conf, args []string) {
	fs := flag.NewFlagSet("rand", flag.ExitOnError)
	n := fs.Int64("n", -1, "number of bytes to generate (default: stream forever)")
	fs.Parse(args)
	if fs.NArg() != 0 {
		log.Fatalf("unexpected arguments: %v", fs.Args())
	}

	if conf.StrictSecureMem {
		probe, err := securemem.NewLocked(1)
		if err != nil {
			log.Fatalf("strict secure memory requested but unavailable: %v", err)
		}
		probe.Destroy()
	}

	if *n < 0 && IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to stream random bytes to a terminal; use -n or redirect stdout")
	}

	// The stream gets its own generator rather than the shared default so
	// its state can be destroyed on any exit path, including signals.
	prng, err := rand.NewPRNG()
	if err != nil {
		log.Fatal(err)
	}
	defer prng.Destroy()
	handleSignals(prng.Destroy)

	buf := make([]byte, 32*1024)
	remaining := *n
	for {
		chunk := buf
		if remaining >= 0 {
			if remaining == 0 {
				return
			}
			if remaining < int64(len(buf)) {
				chunk = buf[:remaining]
			}
		}
		if _, err := prng.Read(chunk); err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stdout.Write(chunk); err != nil {
			log.Fatal(err)
		}
		if remaining > 0 {
			remaining -= int64(len(chunk))
		}
	}
}
