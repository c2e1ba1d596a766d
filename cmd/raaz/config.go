package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

type tomlConfig struct {
	Hash            string
	StrictSecureMem bool
}

// Conf - Shared config
type Conf struct {
	Hash            string
	StrictSecureMem bool
}

func expandConfigFile(path string) string {
	file, err := homedir.Expand(path)
	if err != nil {
		log.Fatal(err)
	}
	return file
}

// loadConfig reads the TOML configuration file when it exists and fills in
// defaults.  A missing config file is not an error.
func loadConfig(path string) Conf {
	var tomlConf tomlConfig
	tomlData, err := os.ReadFile(expandConfigFile(path))
	if err == nil {
		if _, err = toml.Decode(string(tomlData), &tomlConf); err != nil {
			log.Fatal(err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatal(err)
	}

	var conf Conf
	if tomlConf.Hash == "" {
		conf.Hash = "sha256"
	} else {
		conf.Hash = tomlConf.Hash
	}
	conf.StrictSecureMem = tomlConf.StrictSecureMem
	return conf
}
