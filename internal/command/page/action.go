package page

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/cfgload"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/macros"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/templexp"
)

func showAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}

	namespace, err := cfgload.LoadValues(cfg.Page.Namespace)
	if err != nil {
		return err
	}
	uservalues, err := cfgload.LoadValues(cfg.Page.Uservalues)
	if err != nil {
		return err
	}

	expand := cmd.Bool("expand")

	// 与真实渲染相同：绑定进程级上下文，再以宏的视角读取
	return macros.Render(ctx, namespace, uservalues, func(ctx context.Context) error {
		ns, uv := macros.PageFromContext(ctx).Snapshot()
		if expand {
			expanded, expandErr := expandUservalues(uv, ns)
			if expandErr != nil {
				return expandErr
			}
			uv = expanded
		}

		out, err := yamlv3.Marshal(map[string]any{
			"namespace":  ns,
			"uservalues": uv,
		})
		if err != nil {
			return fmt.Errorf("marshal page context: %w", err)
		}
		_, err = cmd.Root().Writer.Write(out)

		return err
	})
}

// expandUservalues 返回新映射，其中字符串值按 namespace 展开，其余值原样保留。
func expandUservalues(uservalues, namespace macros.Values) (macros.Values, error) {
	out := make(macros.Values, len(uservalues))
	for key, value := range uservalues {
		s, ok := value.(string)
		if !ok {
			out[key] = value
			continue
		}

		expanded, err := templexp.ExpandValues(s, namespace)
		if err != nil {
			return nil, fmt.Errorf("expand uservalues.%s: %w", key, err)
		}
		out[key] = expanded
	}

	return out, nil
}
