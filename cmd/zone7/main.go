package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/bodgit/zone7/board"
	"github.com/bodgit/zone7/render"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

const markerLine = 4

type driver struct {
	in  io.Reader
	out io.Writer
}

func renderOptions(c *cli.Context) render.Options {
	opts := render.Options{
		Labels:  c.Bool("labels"),
		Compact: c.Bool("compact"),
	}
	if c.Bool("ascii") {
		opts.Glyphs = &render.ASCIIGlyphs
	}
	return opts
}

func hex(m uint64) string {
	return fmt.Sprintf("0x%x", m)
}

// positions reads triples from the arguments if there are any,
// otherwise from the input
func (d *driver) positions(c *cli.Context, fn func(board.Position) error) error {
	if c.NArg() == 0 {
		return scanPositions(d.in, fn)
	}

	positions, err := parsePositions(c.Args().Slice())
	if err != nil {
		return err
	}
	for _, p := range positions {
		if err := fn(p); err != nil {
			return err
		}
	}

	return nil
}

func (d *driver) normalize(c *cli.Context) error {
	opts := renderOptions(c)
	quiet := c.Bool("quiet")

	if err := d.positions(c, func(p board.Position) error {
		n := p.Normalize()

		if quiet {
			_, err := fmt.Fprintln(d.out, hex(n.Zone), hex(n.Black), hex(n.White))
			return err
		}

		b := new(bytes.Buffer)
		fmt.Fprintln(b, render.Bits(p.Zone))
		fmt.Fprintln(b, render.Bits(p.Black))
		fmt.Fprintln(b, render.Bits(p.White))
		b.WriteString(render.SideBySide(render.Board(p, opts), render.Board(n, opts), " >>> ", markerLine))

		_, err := d.out.Write(b.Bytes())
		return err
	}); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func (d *driver) images(c *cli.Context) error {
	if c.NArg() != 3 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	positions, err := parsePositions(c.Args().Slice())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	p := positions[0].Clean()

	_, best := p.NormalizeIndex()
	iso := p.Images()

	table := tablewriter.NewWriter(d.out)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeader([]string{"Index", "Zone", "Black", "White", "Offset", "Min"})

	for i, x := range iso {
		marker := ""
		if i == best {
			marker = "*"
		}
		table.Append([]string{strconv.Itoa(i), hex(x.Zone), hex(x.Black), hex(x.White), strconv.Itoa(x.Offset()), marker})
	}

	table.Render()

	if c.Bool("verbose") {
		opts := renderOptions(c)
		for i, x := range iso {
			fmt.Fprintln(d.out)
			fmt.Fprintf(d.out, "Symmetry %d:\n", i)
			fmt.Fprint(d.out, render.Board(x, opts))
		}
	}

	return nil
}

func (d *driver) classes(c *cli.Context) error {
	var order []board.Position
	counts := make(map[board.Position]int)

	if err := d.positions(c, func(p board.Position) error {
		n := p.Normalize()
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
		return nil
	}); err != nil {
		return cli.NewExitError(err, 1)
	}

	table := tablewriter.NewWriter(d.out)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeader([]string{"Zone", "Black", "White", "Count"})

	for _, n := range order {
		table.Append([]string{hex(n.Zone), hex(n.Black), hex(n.White), strconv.Itoa(counts[n])})
	}

	table.Render()

	return nil
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	d := &driver{in: in, out: out}

	app := cli.NewApp()

	app.Name = "zone7"
	app.Usage = "7x7 zone board normalization utility"
	app.Version = "1.0.0"
	app.Writer = out

	renderFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "ascii",
			Usage: "draw boards with ASCII characters only",
		},
		&cli.BoolFlag{
			Name:  "labels",
			Usage: "label rows and columns",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "no space between cells",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "normalize",
			Usage:       "Normalize zone, black, white mask triples",
			ArgsUsage:   "[ZONE BLACK WHITE]...",
			Description: "Triples are read from standard input when none are given as arguments",
			Action:      d.normalize,
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:    "quiet",
					Aliases: []string{"q"},
					Usage:   "only print the normalized masks",
				},
			}, renderFlags...),
		},
		{
			Name:        "images",
			Usage:       "List the symmetric images of a position",
			ArgsUsage:   "ZONE BLACK WHITE",
			Description: "",
			Action:      d.images,
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:    "verbose",
					Aliases: []string{"v"},
					Usage:   "draw every image",
				},
			}, renderFlags...),
		},
		{
			Name:        "classes",
			Usage:       "Count the distinct normal forms of a list of positions",
			ArgsUsage:   "[ZONE BLACK WHITE]...",
			Description: "Triples are read from standard input when none are given as arguments",
			Action:      d.classes,
		},
	}

	return app
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
