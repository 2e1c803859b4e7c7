package midistatus

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/webern/midi/midi"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// record is one classified input. Fields that do not apply are left empty.
type record struct {
	Input   string `yaml:"input"`
	Status  string `yaml:"status,omitempty"`
	Value   string `yaml:"value,omitempty"`
	Channel *uint8 `yaml:"channel,omitempty"`
	Marker  bool   `yaml:"marker,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

type classifyOptions struct {
	nibble  bool
	strict  bool
	verbose bool
	output  string
}

func newClassifyCmd() *cobra.Command {
	opts := &classifyOptions{}
	cmd := &cobra.Command{
		Use:   "classify BYTE...",
		Short: "Classify status bytes (0x93, 147, 0o223 ...)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.nibble, "nibble", "n", false, "treat each argument as a bare status nibble (0x8-0xf)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first byte that cannot be classified")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "report where rejected values were classified")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format (text, yaml)")
	return cmd
}

func runClassify(cmd *cobra.Command, opts *classifyOptions, args []string) error {
	if opts.output != outputText && opts.output != outputYAML {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	records := make([]record, 0, len(args))
	for _, arg := range args {
		rec, err := classifyArg(arg, opts.nibble)
		if err != nil {
			if opts.strict {
				return fmt.Errorf("failed to classify %s: %w", arg, err)
			}
			if opts.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
			}
		}
		records = append(records, rec)
	}

	if opts.output == outputYAML {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		return enc.Close()
	}
	writeText(cmd.OutOrStdout(), records)
	return nil
}

// classifyArg parses arg as a byte and classifies it. The returned record
// always describes the outcome, including failures.
func classifyArg(arg string, nibble bool) (record, error) {
	rec := record{Input: arg}
	parsed, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		rec.Error = fmt.Sprintf("not a byte: %v", err)
		return rec, err
	}
	b := byte(parsed)

	if nibble {
		statusType, err := midi.ClassifyStatus(b)
		if err != nil {
			rec.Error = err.Error()
			return rec, err
		}
		rec.Status = statusType.String()
		rec.Value = fmt.Sprintf("%#x", statusType.Value())
		return rec, nil
	}

	if midi.IsFileFramingMarker(b) {
		rec.Marker = true
		rec.Status = framingMarkerName(b)
		return rec, nil
	}
	statusType, channel, err := midi.SplitStatusByte(b)
	if err != nil {
		rec.Error = err.Error()
		return rec, err
	}
	rec.Status = statusType.String()
	rec.Value = fmt.Sprintf("%#x", statusType.Value())
	if statusType != midi.System {
		rec.Channel = &channel
	}
	return rec, nil
}

func framingMarkerName(b byte) string {
	switch b {
	case midi.FileMetaEvent:
		return "FileMetaEvent"
	case midi.FileSysExF0:
		return "FileSysExF0"
	default:
		return "FileSysExF7"
	}
}

func writeText(w io.Writer, records []record) {
	for _, rec := range records {
		switch {
		case rec.Error != "":
			fmt.Fprintf(w, "%s\terror: %s\n", rec.Input, rec.Error)
		case rec.Marker:
			fmt.Fprintf(w, "%s\t%s (file framing marker)\n", rec.Input, rec.Status)
		case rec.Channel != nil:
			fmt.Fprintf(w, "%s\t%s\tvalue=%s\tchannel=%d\n", rec.Input, rec.Status, rec.Value, *rec.Channel)
		default:
			fmt.Fprintf(w, "%s\t%s\tvalue=%s\n", rec.Input, rec.Status, rec.Value)
		}
	}
}
