package parser

import "github.com/adddTer/neonflow/internal/game"

type Parser interface {
	ParseOnsets(file string) ([]game.Onset, error)
	ParseStructure(file string) (*game.Structure, error)
}
