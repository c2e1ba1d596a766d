package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
)

// Version - raaz version
const Version = "0.3.0"

// PRGName - name of the pseudorandom generator backing `raaz rand`
const PRGName = "chacha20-fke"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: raaz [-config file] <command> [arguments]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  checksum [-c] <hash> <files...>   compute or verify file checksums\n")
	fmt.Fprintf(os.Stderr, "  rand [-n N]                       write random bytes to stdout\n")
	fmt.Fprintf(os.Stderr, "  info                              print version and build information\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("raaz: ")

	defaultConfigFile := "~/.raaz.toml"
	if runtime.GOOS == "windows" {
		defaultConfigFile = "~/raaz.toml"
	}
	configFile := flag.String("config", defaultConfigFile, "configuration file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	conf := loadConfig(*configFile)

	switch args[0] {
	case "checksum":
		cmdChecksum(conf, args[1:])
	case "rand":
		cmdRand(conf, args[1:])
	case "info":
		cmdInfo(conf)
	default:
		log.Printf("unknown command %q", args[0])
		usage()
		os.Exit(2)
	}
}
