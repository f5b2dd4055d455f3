package acronyms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/macros"
)

var errMissingTerm = errors.New("missing <term> argument")

func listAction(_ context.Context, cmd *cli.Command) error {
	if _, err := command.Load(cmd); err != nil {
		return err
	}

	table := macros.AcronymTable()

	// 按 Terms() 的顺序输出
	node := &yamlv3.Node{Kind: yamlv3.MappingNode}
	for _, term := range table.Terms() {
		node.Content = append(node.Content,
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: term},
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: table[term]},
		)
	}

	out, err := yamlv3.Marshal(node)
	if err != nil {
		return fmt.Errorf("marshal acronyms: %w", err)
	}
	_, err = cmd.Root().Writer.Write(out)

	return err
}

func lookupAction(_ context.Context, cmd *cli.Command) error {
	term := cmd.Args().First()
	if term == "" {
		return errMissingTerm
	}

	if _, err := command.Load(cmd); err != nil {
		return err
	}

	full, ok := macros.LookupAcronym(term)
	if !ok {
		slog.Debug("Acronym not found", "term", term)

		return fmt.Errorf("%w: %q", macros.ErrUnknownAcronym, term)
	}

	_, err := fmt.Fprintln(cmd.Root().Writer, full)

	return err
}
