package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"regexviz/internal/regexlib"
	"regexviz/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <pattern>",
	Short: "Emit DOT (or a PNG) for a pattern",
	Long:  "Compile a regular expression and write the syntax tree or DFA as DOT text, or as a PNG via the layout tool.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("mode", "tree", "graph to emit: tree or dfa")
	renderCmd.Flags().Bool("min", false, "minimize the DFA before emitting (dfa mode)")
	renderCmd.Flags().StringP("out", "o", "-", "output file, - for stdout")
	renderCmd.Flags().Bool("png", false, "render a PNG via the layout tool")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	minimize, _ := cmd.Flags().GetBool("min")
	outFile, _ := cmd.Flags().GetString("out")
	png, _ := cmd.Flags().GetBool("png")

	re, err := regexlib.Compile(args[0])
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch mode {
	case "tree":
		regexlib.ExportDOT(&buf, re.Tree())
	case "dfa":
		d := re.DFA()
		if minimize {
			d = regexlib.Minimize(d)
		}
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "dfa: %d states\n", d.Size())
		}
		regexlib.ExportDOT(&buf, d)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	out := buf.Bytes()
	if png {
		r := &render.Renderer{Command: viper.GetString("dot_bin")}
		out, err = r.PNG(cmd.Context(), buf.String())
		if err != nil {
			return err
		}
	}

	if outFile == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0o644)
}
