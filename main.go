package main

import (
	"log"

	"github.com/adddTer/neonflow/internal/config"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	p := &Program{}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	if err := p.GenerateChart(); nil != err {
		return err
	}
	p.PrintSummary()

	if *config.Preview {
		return p.Preview()
	}
	return nil
}
