package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hasbyte1/go-underscore/codec"
	"github.com/hasbyte1/go-underscore/collections"
)

// operation transforms a decoded document into the value written as output.
type operation func(c collections.Container[any]) (any, error)

func commands() []*cli.Command {
	countFlag := &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of values to take",
		Value:   1,
	}

	return []*cli.Command{
		{
			Name:  "pluck",
			Usage: "extract a property from every member",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "property",
					Aliases:  []string{"p"},
					Usage:    "property name, dots walk nested values",
					Required: true,
				},
			},
			Action: action("pluck", func(cCtx *cli.Context) operation {
				return pluck(cCtx.String("property"))
			}),
		},
		{
			Name:   "uniq",
			Usage:  "drop repeated values, keeping first occurrences",
			Action: action("uniq", static(uniq)),
		},
		{
			Name:  "first",
			Usage: "take values from the front",
			Flags: []cli.Flag{countFlag},
			Action: action("first", func(cCtx *cli.Context) operation {
				return first(cCtx.Int("count"))
			}),
		},
		{
			Name:  "last",
			Usage: "take values from the back",
			Flags: []cli.Flag{countFlag},
			Action: action("last", func(cCtx *cli.Context) operation {
				return last(cCtx.Int("count"))
			}),
		},
		{
			Name:  "contains",
			Usage: "list the positions holding a value",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Usage:    "JSON literal to look for",
					Required: true,
				},
			},
			Action: action("contains", func(cCtx *cli.Context) operation {
				return contains(cCtx.String("value"))
			}),
		},
		{
			Name:   "keys",
			Usage:  "list member positions",
			Action: action("keys", static(keys)),
		},
		{
			Name:   "values",
			Usage:  "list member values",
			Action: action("values", static(values)),
		},
		{
			Name:   "shuffle",
			Usage:  "list member values in random order",
			Action: action("shuffle", static(shuffle)),
		},
		{
			Name:   "reduce",
			Usage:  "sum numbers or concatenate anything else",
			Action: action("reduce", static(reduce)),
		},
	}
}

func static(op operation) func(*cli.Context) operation {
	return func(*cli.Context) operation { return op }
}

func action(name string, build func(*cli.Context) operation) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		in, closeIn, err := input(cCtx.String("file"))
		if err != nil {
			return err
		}
		defer closeIn()

		slog.Debug("Running", "command", name, "file", cCtx.String("file"))

		return errors.Wrapf(run(in, cCtx.App.Writer, cCtx.Bool("indent"), build(cCtx)),
			"failed to run %s", name)
	}
}

func input(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func run(in io.Reader, out io.Writer, indent bool, op operation) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read document")
	}
	doc, err := codec.Decode(data)
	if err != nil {
		return errors.Wrap(err, "failed to decode document")
	}
	slog.Debug("Decoded document", "kind", doc.Kind(), "members", doc.Len())

	result, err := op(doc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if indent {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(result), "failed to encode result")
}

func pluck(property string) operation {
	return func(c collections.Container[any]) (any, error) {
		return collections.Pluck(c, property), nil
	}
}

func uniq(c collections.Container[any]) (any, error) {
	return collections.Uniq(c), nil
}

func first(n int) operation {
	return func(c collections.Container[any]) (any, error) {
		return collections.First(c, n), nil
	}
}

func last(n int) operation {
	return func(c collections.Container[any]) (any, error) {
		return collections.Last(c, n), nil
	}
}

func contains(literal string) operation {
	return func(c collections.Container[any]) (any, error) {
		var value any
		if err := json.Unmarshal([]byte(literal), &value); err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", literal)
		}
		return collections.Contains(c, value), nil
	}
}

func keys(c collections.Container[any]) (any, error) {
	return collections.Keys(c), nil
}

func values(c collections.Container[any]) (any, error) {
	return collections.Values(c), nil
}

func shuffle(c collections.Container[any]) (any, error) {
	return collections.Shuffle(c), nil
}

func reduce(c collections.Container[any]) (any, error) {
	return collections.Reduce(c, func(acc, v any, _ collections.Position, _ collections.Container[any], _ any) any {
		a, aok := acc.(float64)
		b, bok := v.(float64)
		if aok && bok {
			return a + b
		}
		return fmt.Sprint(acc) + fmt.Sprint(v)
	})
}
