package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BTBurke/montecarlo"
	"github.com/spf13/pflag"
)

func main() {

	opts, err := montecarlo.ParseCommandLine(montecarlo.Inverse)
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse inverse --help for options\n", err)
		}
		os.Exit(1)
	}

	cfg, errs := montecarlo.NewConfig(montecarlo.Inverse, opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	if _, err := montecarlo.RunInverse(cfg); err != nil {
		fmt.Println("Run error:", err)
		os.Exit(1)
	}

	os.Exit(0)
}
