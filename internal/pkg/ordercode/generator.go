package ordercode

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator gera códigos de pedido únicos no formato <prefixo><snowflake id>.
// Processos distintos precisam de node ids distintos para manter a unicidade.
type Generator struct {
	node *snowflake.Node
}

// NewGenerator cria um gerador para o nó informado (0..1023).
func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("ordercode: failed to init snowflake node %d: %w", nodeID, err)
	}
	return &Generator{node: node}, nil
}

// Generate devolve um novo código com o prefixo informado (ex.: "PUR-").
// Seguro para uso concorrente.
func (g *Generator) Generate(prefix string) string {
	return prefix + g.node.Generate().String()
}
