package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/zugferd/internal/cii"
	"github.com/rezonia/zugferd/internal/logger"
	"github.com/rezonia/zugferd/internal/model"
)

var (
	outputFile string
	indent     int
)

var writeCmd = &cobra.Command{
	Use:   "write <descriptor.json|->",
	Short: "Write an invoice descriptor as CII XML",
	Long: `Read one JSON invoice descriptor and write it as ZUGFeRD CII XML.

Use "-" to read the descriptor from stdin. Without --output the document
goes to stdout.

Examples:
  zugferd write invoice.json
  zugferd write invoice.json -o invoice.xml
  zugferd write - --indent 4 < invoice.json`,
	Args: cobra.ExactArgs(1),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	writeCmd.Flags().IntVar(&indent, "indent", cii.DefaultIndent, "Spaces per nesting level, -1 for compact output (default from config)")
}

func runWrite(cmd *cobra.Command, args []string) error {
	d, err := readDescriptor(cmd, args[0])
	if err != nil {
		return err
	}

	n := cfg.Output.Indent
	if cmd.Flags().Changed("indent") {
		n = indent
	}
	w := cii.NewWriter(cii.WithIndent(n), cii.WithLogger(logger.WithComponent("cii")))

	printVerbose("Writing invoice %s (%d line items)\n", d.InvoiceNo, len(d.TradeLineItems))

	if outputFile == "" {
		return w.Save(cmd.OutOrStdout(), d)
	}
	if err := w.SaveFile(outputFile, d); err != nil {
		return err
	}
	printVerbose("Invoice written to %s\n", outputFile)
	return nil
}

func readDescriptor(cmd *cobra.Command, name string) (*model.InvoiceDescriptor, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open descriptor: %w", err)
		}
		defer f.Close()
		r = f
	}

	d, err := model.DecodeDescriptor(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
