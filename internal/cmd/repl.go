package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/reeflective/readline"
	"github.com/spf13/cobra"

	"github.com/inercia/meshcat-go"
	"github.com/inercia/meshcat-go/geometry"
	"github.com/inercia/meshcat-go/pose"
	"github.com/inercia/meshcat-go/wire"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive shell for scene commands",
	Long: `Open an interactive shell on a single connection to the server.
Each line is one scene command:

  meshcat> box /demo/box 0.5 0.5 0.5
  meshcat> move /demo/box 0 1 0
  meshcat> property /demo/box visible false
  meshcat> delete /demo`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()
		return runREPL(cmd.Context(), v)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// replCommands lists the verbs the shell understands, for completion
// and help.
var replCommands = []struct {
	name        string
	description string
}{
	{"box", "box <path> <width> <height> <depth>"},
	{"sphere", "sphere <path> <radius>"},
	{"cylinder", "cylinder <path> <radius> <height>"},
	{"cone", "cone <path> <radius> <height>"},
	{"torus", "torus <path> <radius> <tube>"},
	{"text", "text <path> <text>"},
	{"move", "move <path> <x> <y> <z> [roll pitch yaw]"},
	{"property", "property <path> <name> <value>..."},
	{"delete", "delete <path>"},
	{"paths", "paths - list scene paths published in this session"},
	{"help", "help - show available commands"},
	{"quit", "quit - leave the shell"},
}

func runREPL(ctx context.Context, v *meshcat.Visualizer) error {
	rl := readline.NewShell()
	rl.Prompt.Primary(func() string { return "meshcat> " })

	history := readline.NewInMemoryHistory()
	rl.History.Add("default", history)

	rl.Completer = func(line []rune, cursor int) readline.Completions {
		return completeREPL(string(line), cursor)
	}

	fmt.Printf("Connected to %s. Type 'help' for commands.\n", v.Endpoint())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		fields, err := shlex.Split(strings.TrimSpace(line))
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if err := runREPLCommand(ctx, v, fields); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func runREPLCommand(ctx context.Context, v *meshcat.Visualizer, fields []string) error {
	verb, args := fields[0], fields[1:]

	wantArgs := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s wants %d arguments, got %d", verb, n, len(args))
		}
		return nil
	}
	primitive := func(n int, build func(dims []float64) geometry.Geometry) error {
		if err := wantArgs(n + 1); err != nil {
			return err
		}
		dims, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		obj := geometry.NewObject(geometry.WithGeometry(build(dims)))
		return v.SetObject(ctx, args[0], obj)
	}

	switch verb {
	case "box":
		return primitive(3, func(d []float64) geometry.Geometry { return geometry.NewBox(d[0], d[1], d[2]) })
	case "sphere":
		return primitive(1, func(d []float64) geometry.Geometry { return geometry.NewSphere(d[0]) })
	case "cylinder":
		return primitive(2, func(d []float64) geometry.Geometry { return geometry.NewCylinder(d[0], d[0], d[1]) })
	case "cone":
		return primitive(2, func(d []float64) geometry.Geometry { return geometry.NewCone(d[0], d[1]) })
	case "torus":
		return primitive(2, func(d []float64) geometry.Geometry { return geometry.NewTorus(d[0], d[1]) })
	case "text":
		if err := wantArgs(2); err != nil {
			return err
		}
		return v.SetObject(ctx, args[0], geometry.Text(args[1], 100))
	case "move":
		if len(args) != 4 && len(args) != 7 {
			return fmt.Errorf("move wants <path> <x> <y> <z> [roll pitch yaw]")
		}
		vals, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		rpy := [3]float64{}
		if len(vals) == 6 {
			copy(rpy[:], vals[3:])
		}
		p := pose.New(vals[0], vals[1], vals[2], rpy[0], rpy[1], rpy[2])
		return v.SetTransform(ctx, args[0], p)
	case "property":
		if len(args) < 3 {
			return fmt.Errorf("property wants <path> <name> <value>...")
		}
		return v.SetProperty(ctx, args[0], wire.Property{Name: args[1], Value: propertyValue(args[2:])})
	case "delete":
		if err := wantArgs(1); err != nil {
			return err
		}
		return v.Delete(ctx, args[0])
	case "paths":
		for _, p := range v.Scene().Paths() {
			fmt.Println(p)
		}
		return nil
	case "help":
		for _, c := range replCommands {
			fmt.Printf("  %s\n", c.description)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", verb)
	}
}

func completeREPL(line string, cursor int) readline.Completions {
	if cursor > len(line) {
		cursor = len(line)
	}
	text := line[:cursor]
	if strings.ContainsAny(text, " \t") {
		return readline.Completions{}
	}

	pairs := make([]string, 0, len(replCommands)*2)
	for _, c := range replCommands {
		if strings.HasPrefix(c.name, text) {
			pairs = append(pairs, c.name, c.description)
		}
	}
	if len(pairs) == 0 {
		return readline.Completions{}
	}
	return readline.CompleteValuesDescribed(pairs...).Tag("commands")
}
