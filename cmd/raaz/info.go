package main

import (
	"fmt"
	"runtime"

	"github.com/SooryaN/raaz/securemem"
)

func cmdInfo(conf Conf) {
	fmt.Printf("raaz version %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	fmt.Printf("prg: %s\n", PRGName)
	fmt.Printf("hashes: sha256 sha512 blake2b blake2s sha1(legacy)\n")
	fmt.Printf("macs: hmac-sha1 hmac-sha256 hmac-sha512 hmac-blake2b hmac-blake2s\n")
	fmt.Printf("cipher: chacha20 (rfc 7539)\n")
	fmt.Printf("default checksum hash: %s\n", conf.Hash)

	probe := securemem.New(1)
	locked := probe.Locked()
	probe.Destroy()
	fmt.Printf("secure memory: locked=%v strict=%v\n", locked, conf.StrictSecureMem)
}
